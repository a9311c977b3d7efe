// Package gridcost treats a 2D field of per-cell entry costs as a graph
// for shortest-path search, basin analysis and tiling.
//
// What:
//
//   - Grid stores costs densely in row-major order; cells may be absent
//     (impassable), which models sparse coordinate→cost inputs.
//   - Parse reads one decimal digit per cell from puzzle text.
//   - Tile expands a grid into an n×n super-grid, shifting costs by tile
//     distance with a 1..9 wraparound.
//   - LowPoints and Basins find local minima and the regions draining into
//     them, bounded by cells of height BasinWall.
//
// Complexity:
//
//   - Parse, New, FromMap:  O(R×C) time and memory.
//   - Tile(n):              O(n²×R×C) time and memory.
//   - LowPoints, Basins:    O(R×C) time, Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDigit: a character that is not 0-9.
//   - ErrNegativeCost, ErrNegativeCoord: invalid dense or sparse entries.
//   - ErrBadTileFactor: Tile with n < 1.
package gridcost
