// Package bfs provides tunable options and error definitions
// for breadth‐first walks over an implicit graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNext is returned if no neighbor function is supplied.
	ErrNilNext = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a Walk via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize Walk execution.
type Options[T comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(v T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Filter can skip edges by returning false.
	// Called for each edge curr→neighbor before the neighbor is enqueued.
	Filter func(curr, neighbor T) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:      context.Background(),
		OnVisit:  func(T, int) error { return nil },
		MaxDepth: 0,
		Filter:   func(_, _ T) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[T comparable](fn func(v T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips neighbors when fn returns false.
func WithFilter[T comparable](fn func(curr, neighbor T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree.
type Result[T comparable] struct {
	Start  T
	Order  []T
	Depth  map[T]int
	Parent map[T]T
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[T]) PathTo(dest T) ([]T, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []T{}
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.Start {
			break
		}
		cur = r.Parent[cur]
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
