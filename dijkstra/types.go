// Package dijkstra defines core types and configuration options
// for uniform-cost search on a cost grid.
//
// The search finds the cheapest route between two cells of a
// *gridcost.Grid, where entering a cell costs that cell's value and the
// start cell is never charged. Moves are the four axis-aligned steps.
//
// Complexity:
//
//	– Time:  O(E log V)   where V = present cells, E ≤ 4V moves
//	   • Every improving relaxation pushes one frontier entry (lazy decrease-key).
//	   • Each heap operation costs O(log (V+E)), simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) for the distance table and the optional predecessor table.
//	   • O(E) frontier entries in the worst case.
//
// Options:
//
//	– ReturnPath:   if true, Result.Path holds one cheapest start→goal route.
//	– MaxDistance:  cap on accumulated cost; routes costing more are not explored.
//	– OnRelax:      hook observing every write to the distance table.
//	– Logger:       receives a debug summary of each search.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrStartNotFound   if the start cell is not present in the grid.
//	– ErrOptionViolation if an option was given an invalid value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ed-w-lee/advent-of-code-2021/gridcost"
)

// Infinity is the distance of every cell not yet reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the search implementation.
var (
	// ErrNilGrid indicates that a nil *gridcost.Grid was passed to ShortestPath.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartNotFound indicates that the start cell is absent from the grid.
	ErrStartNotFound = errors.New("dijkstra: start cell not found in grid")

	// ErrOptionViolation indicates that an Option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Stats counts frontier activity during one search.
type Stats struct {
	Pushed int // entries pushed onto the frontier, including the start
	Popped int // entries popped from the frontier
	Stale  int // popped entries discarded because a cheaper route was known
}

// Result is the outcome of a search: either the goal was reached with a
// minimal Cost, or it is unreachable (Reachable == false, Cost == Infinity).
// An unreachable goal is not an error.
type Result struct {
	Reachable bool
	Cost      int64
	Path      []gridcost.Coord // start…goal, only with WithReturnPath
	Stats     Stats
}

// Options configures the behavior of ShortestPath.
//
// ReturnPath  – if true, reconstruct the cheapest route into Result.Path.
// MaxDistance – cap on accumulated cost; must be ≥ 0. Default Infinity.
// OnRelax     – called as OnRelax(cell, before, after) whenever the distance of
//
//	cell drops from before to after. Never called for the start cell.
//
// Logger      – optional; receives a Debug entry per search.
type Options struct {
	ReturnPath  bool
	MaxDistance int64
	OnRelax     func(c gridcost.Coord, before, after int64)
	Logger      logrus.FieldLogger

	err error // first invalid option, surfaced by ShortestPath
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithReturnPath enables reconstruction of the cheapest route.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum accumulated cost.
// Cells whose cheapest cost would exceed this value are not explored, so a
// goal beyond it is reported as unreachable.
// A negative value is recorded and returned as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithOnRelax registers a hook observing every distance-table improvement.
func WithOnRelax(fn func(c gridcost.Coord, before, after int64)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// WithLogger sets the logger that receives a debug summary of the search.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:  false
//   - MaxDistance: Infinity (no cap)
//   - OnRelax:     nil
//   - Logger:      nil (silent)
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: Infinity,
	}
}
