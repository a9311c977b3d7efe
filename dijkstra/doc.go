// Package dijkstra provides uniform-cost search between two cells of a
// gridcost.Grid, where the price of a route is the sum of the entry costs of
// every cell it enters after the start.
//
// Overview:
//
//   - ShortestPath settles cells in order of increasing accumulated cost using
//     a min-heap frontier and stops as soon as the goal is popped.
//   - The frontier breaks cost ties by the coordinate sum row+col (then row),
//     so repeated runs pop cells in the same order and return the same route.
//   - Stale frontier entries are filtered at pop time instead of using a
//     decrease-key heap.
//   - An unreachable goal is a normal Result (Reachable == false), not an error.
//
// The same engine runs unchanged on a base grid and on its Tile expansion.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *gridcost.Grid.
//   - ErrStartNotFound:
//     Returned if the start cell is absent or outside the grid.
//   - ErrOptionViolation:
//     Returned if an option was given an invalid value (negative MaxDistance).
//
// API reference:
//
//	func ShortestPath(
//	    g *gridcost.Grid,
//	    start, goal gridcost.Coord,
//	    opts ...Option,
//	) (Result, error)
//
//	  - opts:
//	      • WithReturnPath():            fill Result.Path with one cheapest route.
//	      • WithMaxDistance(int64):      do not explore routes costing more.
//	      • WithOnRelax(fn):             observe every distance-table improvement.
//	      • WithLogger(logrus.FieldLogger): debug summary with frontier Stats.
//
// Thread safety:
//
//   - Grids are immutable, so concurrent searches on one grid are safe; each
//     call owns its distance table and frontier.
package dijkstra
