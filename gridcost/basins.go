package gridcost

import (
	"fmt"

	"github.com/ed-w-lee/advent-of-code-2021/bfs"
)

// LowPoints returns every present cell whose value is strictly lower than
// all of its present 4-neighbors, in row-major order.
//
// Time:   O(R·C).
func (g *Grid) LowPoints() []Coord {
	var lows []Coord
	g.Cells(func(c Coord, h int) {
		for _, n := range g.Neighbors(c) {
			if v, _ := g.At(n); v <= h {
				return
			}
		}
		lows = append(lows, c)
	})
	return lows
}

// Basins flood-fills from each low point (row-major) through present cells
// lower than BasinWall. A cell claimed by an earlier basin is never
// revisited, so basins are disjoint. Each basin lists its cells in BFS
// visit order starting at its low point.
//
// Time:   O(R·C).
// Memory: O(R·C) for claim flags and output.
func (g *Grid) Basins() [][]Coord {
	claimed := make([]bool, len(g.cells))
	open := func(_, to Coord) bool {
		v, _ := g.At(to)
		return v < BasinWall && !claimed[g.index(to.Row, to.Col)]
	}

	var basins [][]Coord
	for _, low := range g.LowPoints() {
		if v, _ := g.At(low); v >= BasinWall || claimed[g.index(low.Row, low.Col)] {
			continue
		}
		res, err := bfs.Walk(low, g.Neighbors, bfs.WithFilter(open))
		if err != nil {
			// No context, hook or depth option is passed, so Walk cannot fail here.
			panic(fmt.Sprintf("gridcost: basin walk from %v: %v", low, err))
		}
		for _, c := range res.Order {
			claimed[g.index(c.Row, c.Col)] = true
		}
		basins = append(basins, res.Order)
	}
	return basins
}
