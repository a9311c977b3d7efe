// Package dijkstra implements uniform-cost search (Dijkstra's algorithm)
// between two cells of a weighted grid.
//
// Notes on implementation choices:
//
//   - Distances live in a dense table indexed like the grid (row-major).
//   - The frontier is a min-heap ordered by accumulated cost, then by the
//     coordinate sum row+col, then by row, so equal-cost entries pop in a
//     fixed order.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and discarding stale entries whose cost exceeds the recorded distance.
//   - The search returns as soon as the goal is popped; with non-negative
//     costs the first pop of a cell carries its final distance.
package dijkstra

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/ed-w-lee/advent-of-code-2021/gridcost"
)

// ShortestPath returns the minimum total entry cost of any route from start
// to goal on g. The start cell's own cost is never charged, so
// ShortestPath(g, p, p) costs 0.
//
// Returns:
//
//   - Result{Reachable: true, Cost: c} for the cheapest cost c.
//   - Result{Reachable: false, Cost: Infinity} if goal is absent, outside the
//     grid, disconnected from start, or beyond MaxDistance.
//   - err: ErrNilGrid, ErrStartNotFound, or ErrOptionViolation.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start must be a present cell of g (ErrStartNotFound).
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E)
func ShortestPath(g *gridcost.Grid, start, goal gridcost.Coord, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid and start
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.Has(start) {
		return Result{}, ErrStartNotFound
	}

	r := newRunner(g, cfg)
	res := r.run(start, goal)
	res.Stats = r.stats
	r.log(start, goal, res)

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridcost.Grid // read-only within the search
	options Options
	dist    []int64 // row-major index → best known cost from start
	prev    []int   // row-major index → predecessor index, -1 for none
	pq      statePQ
	stats   Stats
}

func newRunner(g *gridcost.Grid, cfg Options) *runner {
	n := g.Rows() * g.Cols()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		pq:      make(statePQ, 0, g.Rows()+g.Cols()),
	}
	for i := range r.dist {
		r.dist[i] = Infinity
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}
	return r
}

// run seeds the frontier with start and pops until goal is settled or the
// frontier is exhausted.
func (r *runner) run(start, goal gridcost.Coord) Result {
	unreachable := Result{Reachable: false, Cost: Infinity}
	if !r.g.Has(goal) {
		return unreachable
	}

	r.dist[r.g.Index(start)] = 0
	r.push(state{cost: 0, pos: start})

	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		s := heap.Pop(&r.pq).(state)
		r.stats.Popped++

		// 2) Goal popped: its cost is final.
		if s.pos == goal {
			res := Result{Reachable: true, Cost: s.cost}
			if r.options.ReturnPath {
				res.Path = r.path(goal)
			}
			return res
		}

		// 3) Stale entry from an earlier, dearer insertion.
		if s.cost > r.dist[r.g.Index(s.pos)] {
			r.stats.Stale++
			continue
		}

		// 4) Relax the four neighbors.
		r.relax(s)
	}

	return unreachable
}

// relax tries to improve the distance of every present neighbor of s.pos.
// A neighbor is updated and pushed only on a strict improvement.
func (r *runner) relax(s state) {
	from := r.g.Index(s.pos)
	for _, n := range r.g.Neighbors(s.pos) {
		w, _ := r.g.At(n)
		cand := s.cost + int64(w)

		// Respect MaxDistance.
		if cand > r.options.MaxDistance {
			continue
		}

		to := r.g.Index(n)
		old := r.dist[to]
		if cand >= old {
			continue
		}

		r.dist[to] = cand
		if r.options.OnRelax != nil {
			r.options.OnRelax(n, old, cand)
		}
		if r.prev != nil {
			r.prev[to] = from
		}
		r.push(state{cost: cand, pos: n})
	}
}

func (r *runner) push(s state) {
	heap.Push(&r.pq, s)
	r.stats.Pushed++
}

// path walks predecessor links back from goal and returns start…goal.
func (r *runner) path(goal gridcost.Coord) []gridcost.Coord {
	var rev []gridcost.Coord
	for at := r.g.Index(goal); at >= 0; at = r.prev[at] {
		rev = append(rev, r.g.Coordinate(at))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

func (r *runner) log(start, goal gridcost.Coord, res Result) {
	if r.options.Logger == nil {
		return
	}
	r.options.Logger.WithFields(logrus.Fields{
		"start":     start.String(),
		"goal":      goal.String(),
		"reachable": res.Reachable,
		"cost":      res.Cost,
		"pushed":    res.Stats.Pushed,
		"popped":    res.Stats.Popped,
		"stale":     res.Stats.Stale,
	}).Debug("dijkstra: search finished")
}

// state is a frontier entry: a cell and the accumulated cost of the route
// that reached it.
type state struct {
	cost int64
	pos  gridcost.Coord
}

// statePQ is a min-heap of state ordered by cost ascending, then by
// pos.Sum() ascending, then by pos.Row ascending.
type statePQ []state

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: cheaper first, then nearer the origin.
func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if as, bs := a.pos.Sum(), b.pos.Sum(); as != bs {
		return as < bs
	}
	return a.pos.Row < b.pos.Row
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type state.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(state)) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop after moving the minimum there.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
