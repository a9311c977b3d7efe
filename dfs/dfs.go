// Package dfs counts walks between two vertices of a core.Graph by
// exhaustive depth-first search under a revisit policy.
//
// Key features:
//   - CountPaths(g, from, to, opts...): number of distinct walks from→to
//   - Revisit policy: WithRevisitable marks vertices that may repeat;
//     WithRevisitBudget grants one other vertex extra entries
//   - Hook: OnPath observes every counted walk, error aborts
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   proportional to the number of counted walks times their length.
//   - Memory: O(V + E) for the adjacency snapshot and the recursion stack.
package dfs

import (
	"fmt"

	"github.com/ed-w-lee/advent-of-code-2021/core"
)

// pathCounter encapsulates state during one CountPaths call.
// Vertices are renumbered to dense indices in Vertices() order.
type pathCounter struct {
	ids         []string // index → vertex ID
	adj         [][]int  // index → neighbor indices, sorted by ID
	revisitable []bool
	from, to    int
	opts        Options

	visits  []int // entries of each vertex on the current walk
	stack   []int // current walk, from first
	doubled int   // vertex spending the revisit budget, -1 for none
	extra   int   // revisit budget spent on the current walk
	count   int
	scratch []string
}

// CountPaths returns the number of distinct walks from `from` to `to`.
//
// A walk ends the first time it enters `to`. It never re-enters `from`.
// A vertex marked revisitable may be entered any number of times; any other
// vertex at most once, except that a single vertex per walk may take up to
// RevisitBudget extra entries. from == to counts the empty walk, so 1.
//
// Errors:
//
//   - ErrOptionViolation        if an option value is invalid.
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if from is missing.
//   - ErrTargetVertexNotFound   if to is missing.
//   - ErrUnboundedPaths         if two revisitable vertices (other than from
//     and to) are adjacent, or one has a self-loop.
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
//   - any error returned by OnPath, wrapped.
func CountPaths(g *core.Graph, from, to string, opts ...Option) (int, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// 2. Validate input graph and endpoints
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return 0, ErrStartVertexNotFound
	}
	if !g.HasVertex(to) {
		return 0, ErrTargetVertexNotFound
	}

	// 3. Snapshot adjacency into dense indices
	pc := newPathCounter(g, o)
	pc.from, pc.to = pc.index(from), pc.index(to)
	if err := pc.checkBounded(); err != nil {
		return 0, err
	}

	// 4. Walk
	pc.visits[pc.from] = 1
	if err := pc.walk(pc.from); err != nil {
		return pc.count, err
	}

	return pc.count, nil
}

func newPathCounter(g *core.Graph, o Options) *pathCounter {
	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	snapshot := g.AdjacencyList()
	adj := make([][]int, len(ids))
	revisitable := make([]bool, len(ids))
	for i, id := range ids {
		for _, nid := range snapshot[id] {
			adj[i] = append(adj[i], pos[nid])
		}
		if o.Revisitable != nil {
			revisitable[i] = o.Revisitable(id)
		}
	}

	return &pathCounter{
		ids:         ids,
		adj:         adj,
		revisitable: revisitable,
		opts:        o,
		visits:      make([]int, len(ids)),
		doubled:     -1,
	}
}

func (pc *pathCounter) index(id string) int {
	for i, v := range pc.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// checkBounded rejects graphs in which a walk could alternate between
// revisitable vertices without end. Edges touching from or to are exempt
// because from is never re-entered and to ends the walk.
func (pc *pathCounter) checkBounded() error {
	for u, nbrs := range pc.adj {
		if !pc.revisitable[u] || u == pc.from || u == pc.to {
			continue
		}
		for _, v := range nbrs {
			if pc.revisitable[v] && v != pc.from && v != pc.to {
				return fmt.Errorf("%w: %q-%q", ErrUnboundedPaths, pc.ids[u], pc.ids[v])
			}
		}
	}
	return nil
}

// walk extends the current walk from v, counting every arrival at pc.to.
func (pc *pathCounter) walk(v int) error {
	// 1. Cancellation check
	select {
	case <-pc.opts.Ctx.Done():
		return pc.opts.Ctx.Err()
	default:
	}

	pc.stack = append(pc.stack, v)
	defer func() { pc.stack = pc.stack[:len(pc.stack)-1] }()

	// 2. Target reached: count and stop this walk
	if v == pc.to {
		pc.count++
		return pc.emit()
	}

	// 3. Explore each admissible neighbor
	for _, n := range pc.adj[v] {
		if n == pc.from {
			continue
		}

		switch {
		case pc.revisitable[n] || pc.visits[n] == 0:
			if err := pc.enter(n); err != nil {
				return err
			}
		case pc.extra < pc.opts.RevisitBudget && (pc.doubled < 0 || pc.doubled == n):
			prev := pc.doubled
			pc.doubled = n
			pc.extra++
			err := pc.enter(n)
			pc.extra--
			pc.doubled = prev
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (pc *pathCounter) enter(n int) error {
	pc.visits[n]++
	err := pc.walk(n)
	pc.visits[n]--
	return err
}

func (pc *pathCounter) emit() error {
	if pc.opts.OnPath == nil {
		return nil
	}
	pc.scratch = pc.scratch[:0]
	for _, i := range pc.stack {
		pc.scratch = append(pc.scratch, pc.ids[i])
	}
	if err := pc.opts.OnPath(pc.scratch); err != nil {
		return fmt.Errorf("dfs: OnPath hook for walk %d: %w", pc.count, err)
	}
	return nil
}
