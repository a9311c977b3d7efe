package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/ed-w-lee/advent-of-code-2021/dijkstra"
	"github.com/ed-w-lee/advent-of-code-2021/gridcost"
)

// randomGrid builds an n×n grid of costs in [1, 9] from a fixed seed.
func randomGrid(b *testing.B, n int) *gridcost.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(15))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			values[r][c] = 1 + rng.Intn(gridcost.MaxCost)
		}
	}
	g, err := gridcost.New(values)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkShortestPath_100x100 measures a corner-to-corner search on a
// puzzle-sized grid.
func BenchmarkShortestPath_100x100(b *testing.B) {
	g := randomGrid(b, 100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, gridcost.Coord{}, g.Goal())
	}
}

// BenchmarkShortestPath_Tiled500x500 runs the same search on the 5×5
// expansion of a 100×100 grid.
func BenchmarkShortestPath_Tiled500x500(b *testing.B) {
	g, err := randomGrid(b, 100).Tile(5)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, gridcost.Coord{}, g.Goal())
	}
}

// BenchmarkShortestPath_WithPath adds predecessor tracking.
func BenchmarkShortestPath_WithPath(b *testing.B) {
	g := randomGrid(b, 100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, gridcost.Coord{}, g.Goal(), dijkstra.WithReturnPath())
	}
}
