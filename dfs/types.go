// Package dfs defines types and options for depth-first path counting,
// including cancellation, a revisit policy, and a per-path hook.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to CountPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that the specified target vertex ID
	// does not exist in the graph.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")

	// ErrOptionViolation indicates that an Option was given an invalid value.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrUnboundedPaths indicates that two revisitable vertices are joined,
	// so walks could bounce between them forever.
	ErrUnboundedPaths = errors.New("dfs: revisitable vertices form a cycle")
)

// Option configures optional behavior of CountPaths.
type Option func(*Options)

// Options holds configurable parameters for path counting.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Revisitable reports whether a vertex may be entered any number of
	// times. Nil means no vertex is revisitable.
	Revisitable func(id string) bool

	// RevisitBudget is the number of extra entries granted to one single
	// non-revisitable vertex per walk. Default 0.
	RevisitBudget int

	// OnPath, if non-nil, receives every counted walk from start to target.
	// The slice is reused between calls; copy it to retain it.
	// Returning an error aborts counting with that error.
	OnPath func(path []string) error

	err error // first invalid option, surfaced by CountPaths
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No revisitable vertices
//   - RevisitBudget = 0
//   - No path hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Revisitable:   nil,
		RevisitBudget: 0,
		OnPath:        nil,
	}
}

// WithContext returns an Option that sets the Context for counting.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRevisitable returns an Option that marks vertices for which fn
// returns true as freely revisitable.
func WithRevisitable(fn func(id string) bool) Option {
	return func(o *Options) {
		o.Revisitable = fn
	}
}

// WithRevisitBudget returns an Option that lets one non-revisitable vertex
// be entered up to n extra times per walk.
// A negative n is recorded and returned as ErrOptionViolation.
func WithRevisitBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: RevisitBudget must be non-negative (%d)", ErrOptionViolation, n)
			return
		}
		o.RevisitBudget = n
	}
}

// WithOnPath returns an Option that installs fn as a per-walk hook.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}
