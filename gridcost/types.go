// Package gridcost defines core types and constants for the cost grid.
package gridcost

import "fmt"

const (
	// MaxCost is the largest entry cost a tiled cell can take; tiling wraps
	// costs back into [1, MaxCost].
	MaxCost = 9

	// BasinWall is the height that bounds a basin; such cells belong to none.
	BasinWall = 9

	// absent marks a coordinate that is not part of the grid (impassable).
	absent = -1
)

// Coord is a (row, column) position. Both components are signed so that
// neighbor arithmetic may step outside the grid; such coordinates are simply
// not present.
type Coord struct {
	Row, Col int
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Sum returns Row+Col, the tie-break key used by the search frontier.
func (c Coord) Sum() int {
	return c.Row + c.Col
}

// String renders c as "r,c".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// neighborOffsets lists the four axis-aligned moves: up, right, down, left.
var neighborOffsets = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an immutable 2D field of entry costs stored densely in row-major
// order: cells[row*cols+col]. A cell holding absent is not part of the grid
// and can never be entered. Rows and Cols are one more than the largest
// row and column index of the grid.
type Grid struct {
	rows, cols int
	cells      []int
	present    int
}
