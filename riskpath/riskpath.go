// Package riskpath answers the lowest-total-risk puzzle: the cheapest route
// from the top-left to the bottom-right corner of a digit grid, on the grid
// itself and on its TileFactor×TileFactor expansion.
package riskpath

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ed-w-lee/advent-of-code-2021/dijkstra"
	"github.com/ed-w-lee/advent-of-code-2021/gridcost"
	"github.com/ed-w-lee/advent-of-code-2021/input"
)

// TileFactor is the side length, in copies of the input, of the tiled map.
const TileFactor = 5

// ErrNoPath indicates the bottom-right corner cannot be reached.
var ErrNoPath = errors.New("riskpath: no path exists")

// Options configures the solvers.
type Options struct {
	// Logger receives one Info entry per solve and the search's Debug summary.
	Logger logrus.FieldLogger
}

// Option represents a functional option for configuring the solvers.
type Option func(*Options)

// WithLogger sets the logger used by the solvers.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// SolveBase returns the lowest total risk across the grid read from path.
// I/O failures wrap the os error; malformed input wraps a gridcost sentinel.
func SolveBase(path string, opts ...Option) (int64, error) {
	g, err := load(path)
	if err != nil {
		return 0, err
	}
	return Solve(g, opts...)
}

// SolveTiled is SolveBase on the TileFactor×TileFactor expansion.
func SolveTiled(path string, opts ...Option) (int64, error) {
	g, err := load(path)
	if err != nil {
		return 0, err
	}
	return solveTiled(g, opts...)
}

// SolveBaseReader is SolveBase reading the grid from r.
func SolveBaseReader(r io.Reader, opts ...Option) (int64, error) {
	g, err := gridcost.ParseReader(r)
	if err != nil {
		return 0, fmt.Errorf("riskpath: %w", err)
	}
	return Solve(g, opts...)
}

// SolveTiledReader is SolveTiled reading the grid from r.
func SolveTiledReader(r io.Reader, opts ...Option) (int64, error) {
	g, err := gridcost.ParseReader(r)
	if err != nil {
		return 0, fmt.Errorf("riskpath: %w", err)
	}
	return solveTiled(g, opts...)
}

// Solve searches g from (0,0) to g.Goal() and returns the cost, or
// ErrNoPath if the goal is unreachable.
func Solve(g *gridcost.Grid, opts ...Option) (int64, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	var searchOpts []dijkstra.Option
	if o.Logger != nil {
		searchOpts = append(searchOpts, dijkstra.WithLogger(o.Logger))
	}

	start := gridcost.Coord{}
	res, err := dijkstra.ShortestPath(g, start, g.Goal(), searchOpts...)
	if err != nil {
		return 0, fmt.Errorf("riskpath: %w", err)
	}
	if !res.Reachable {
		return 0, fmt.Errorf("%w: %v to %v", ErrNoPath, start, g.Goal())
	}

	if o.Logger != nil {
		o.Logger.WithFields(logrus.Fields{
			"rows": g.Rows(),
			"cols": g.Cols(),
			"risk": res.Cost,
		}).Info("riskpath: solved")
	}

	return res.Cost, nil
}

func solveTiled(g *gridcost.Grid, opts ...Option) (int64, error) {
	tiled, err := g.Tile(TileFactor)
	if err != nil {
		return 0, fmt.Errorf("riskpath: %w", err)
	}
	return Solve(tiled, opts...)
}

func load(path string) (*gridcost.Grid, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("riskpath: %w", err)
	}
	g, err := gridcost.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("riskpath: %s: %w", path, err)
	}
	return g, nil
}
