// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted distances, parent links, and visit order.
//
// The graph is described by a neighbor function, so grids, state spaces
// and adjacency maps can all be walked without building an explicit graph.
// Walk explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[T comparable] struct {
	v     T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	next    func(T) []T
	opts    Options[T]
	ctx     context.Context
	queue   []queueItem[T]
	visited map[T]bool
	res     *Result[T]
}

// Walk runs breadth-first search from start, asking next for the
// neighbors of each dequeued vertex and applying any number of Options.
// Returns ErrNilNext for a nil neighbor function, ErrOptionViolation for
// bad options, the context error on cancellation, or a wrapped hook error.
// A partial Result is returned together with any error raised mid-walk.
func Walk[T comparable](start T, next func(T) []T, opts ...Option[T]) (*Result[T], error) {
	if next == nil {
		return nil, ErrNilNext
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{
		next:    next,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[T]bool),
		res: &Result[T]{
			Start:  start,
			Depth:  make(map[T]int),
			Parent: make(map[T]T),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, start, false)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker[T]) enqueue(v T, d int, parent T, hasParent bool) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if hasParent {
		w.res.Parent[v] = parent
	}
	w.queue = append(w.queue, queueItem[T]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.v) {
		if w.visited[nbr] || !w.opts.Filter(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v, true)
	}
}
