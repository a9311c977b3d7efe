// Package gridcost provides a 2D field of per-cell entry costs that search
// algorithms treat as a graph. It supports:
//
//   - Dense construction from [][]int, sparse construction from a map
//   - Digit-per-cell parsing of puzzle text
//   - 4-connected neighbor lookup skipping absent cells
//   - Tiling into an n×n super-grid with wrapping costs
//   - Low points and basins (flood fill bounded by BasinWall)
package gridcost

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// New constructs a Grid from a non-empty, rectangular 2D slice where
// values[r][c] is the entry cost of (r, c). The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeCost
// for a cost below zero and ErrCostRange for a cost above MaxCost.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	g := newGrid(h, w)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if err := checkCost(v); err != nil {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", err, r, c, v)
			}
			g.cells[g.index(r, c)] = v
		}
	}
	g.present = h * w

	return g, nil
}

// FromMap constructs a Grid from a sparse coordinate→cost mapping.
// The grid spans rows [0, max row] and columns [0, max col]; coordinates
// missing from cells are absent. Returns ErrEmptyGrid for an empty map,
// ErrNegativeCoord, ErrNegativeCost or ErrCostRange for invalid entries.
func FromMap(cells map[Coord]int) (*Grid, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	// Sorted keys keep error reporting deterministic.
	keys := maps.Keys(cells)
	slices.SortFunc(keys, compareCoord)

	var h, w int
	for _, k := range keys {
		if k.Row < 0 || k.Col < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeCoord, k)
		}
		if err := checkCost(cells[k]); err != nil {
			return nil, fmt.Errorf("%w: %v=%d", err, k, cells[k])
		}
		h, w = max(h, k.Row+1), max(w, k.Col+1)
	}
	g := newGrid(h, w)
	for i := range g.cells {
		g.cells[i] = absent
	}
	for _, k := range keys {
		g.cells[g.index(k.Row, k.Col)] = cells[k]
	}
	g.present = len(keys)

	return g, nil
}

// checkCost reports whether v lies in [0, MaxCost].
func checkCost(v int) error {
	switch {
	case v < 0:
		return ErrNegativeCost
	case v > MaxCost:
		return ErrCostRange
	}
	return nil
}

func newGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]int, rows*cols)}
}

// compareCoord orders coordinates row-major.
func compareCoord(a, b Coord) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// Rows returns the number of rows R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns C.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of present cells.
func (g *Grid) Len() int { return g.present }

// InBounds reports whether c lies within the R×C bounding box.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Has reports whether c is a present cell of the grid.
func (g *Grid) Has(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c.Row, c.Col)] != absent
}

// At returns the entry cost of c and whether c is present.
func (g *Grid) At(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	v := g.cells[g.index(c.Row, c.Col)]
	if v == absent {
		return 0, false
	}
	return v, true
}

// Neighbors returns the present axis-aligned neighbors of c in the order
// up, right, down, left.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if n := c.Add(d); g.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Goal returns the bottom-right corner (R-1, C-1).
func (g *Grid) Goal() Coord {
	return Coord{Row: g.rows - 1, Col: g.cols - 1}
}

// Cells calls fn for every present cell in row-major order.
func (g *Grid) Cells(fn func(c Coord, cost int)) {
	for i, v := range g.cells {
		if v != absent {
			fn(g.Coordinate(i), v)
		}
	}
}

// String renders the grid one row per line, a digit per cell and a
// space for absent cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if v := g.cells[g.index(r, c)]; v == absent {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(byte('0' + v))
			}
		}
	}
	return sb.String()
}

// index maps (r,c) to a row‑major index: r*cols + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row‑major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Index converts a present-or-absent in-bounds coordinate to its row-major
// index, or -1 when c is out of bounds.
func (g *Grid) Index(c Coord) int {
	if !g.InBounds(c) {
		return -1
	}
	return g.index(c.Row, c.Col)
}
