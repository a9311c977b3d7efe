package gridcost

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tile returns a new grid made of n×n copies of g. The copy at tile offset
// (tr, tc) occupies rows [tr*R, (tr+1)*R) and columns [tc*C, (tc+1)*C), and
// each cost v becomes ((v + tr + tc - 1) mod 9) + 1, so tile (0,0) equals g.
// Every shifted copy has costs in [1, 9]; a 0 cost stays 0 on tile (0,0)
// only, and becomes tr+tc elsewhere (wrapped). Absent cells stay absent in
// every copy. g is not modified.
// Returns ErrBadTileFactor if n < 1.
// Complexity: O(n²×R×C) time and memory.
func (g *Grid) Tile(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadTileFactor, n)
	}
	out := newGrid(g.rows*n, g.cols*n)
	for tr := 0; tr < n; tr++ {
		for tc := 0; tc < n; tc++ {
			for r := 0; r < g.rows; r++ {
				for c := 0; c < g.cols; c++ {
					v := g.cells[g.index(r, c)]
					if v != absent {
						v = wrapCost(v + tr + tc)
					}
					out.cells[out.index(tr*g.rows+r, tc*g.cols+c)] = v
				}
			}
		}
	}
	out.present = g.present * n * n

	return out, nil
}

// wrapCost folds a shifted cost back into [1, MaxCost]. A zero cost on the
// origin tile stays zero, matching the untiled grid; Go's % truncates, so
// (0-1)%9+1 == 0.
func wrapCost[T constraints.Integer](v T) T {
	return (v-1)%MaxCost + 1
}
