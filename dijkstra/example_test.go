// Package dijkstra_test provides examples demonstrating how to use the grid search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/ed-w-lee/advent-of-code-2021/dijkstra"
	"github.com/ed-w-lee/advent-of-code-2021/gridcost"
)

// ExampleShortestPath_sample computes the lowest total risk across the
// puzzle sample and across its 5×5 tiled expansion.
// Complexity: O(E log V) per search.
func ExampleShortestPath_sample() {
	// 1) Parse the 10×10 sample; every digit is the cost of entering its cell.
	g, err := gridcost.Parse(sample)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Search from the top-left corner to the bottom-right one.
	res, _ := dijkstra.ShortestPath(g, gridcost.Coord{}, g.Goal())
	fmt.Println("base:", res.Cost)

	// 3) Repeat on the 50×50 tiled grid.
	tiled, _ := g.Tile(5)
	res, _ = dijkstra.ShortestPath(tiled, gridcost.Coord{}, tiled.Goal())
	fmt.Println("tiled:", res.Cost)

	// Output:
	// base: 40
	// tiled: 315
}

// ExampleShortestPath_returnPath shows path reconstruction. The start cell
// is not charged, so the route down the left column costs 1+1.
func ExampleShortestPath_returnPath() {
	g, _ := gridcost.Parse([]string{"19", "11"})

	res, _ := dijkstra.ShortestPath(g, gridcost.Coord{}, g.Goal(), dijkstra.WithReturnPath())
	fmt.Println(res.Cost, res.Path)

	// Output: 2 [0,0 1,0 1,1]
}

// ExampleShortestPath_unreachable shows that a disconnected goal is a
// normal result rather than an error.
func ExampleShortestPath_unreachable() {
	// Only two diagonal cells exist; there is no axis-aligned move between them.
	g, _ := gridcost.FromMap(map[gridcost.Coord]int{
		{Row: 0, Col: 0}: 1,
		{Row: 1, Col: 1}: 1,
	})

	res, err := dijkstra.ShortestPath(g, gridcost.Coord{}, g.Goal())
	fmt.Println(res.Reachable, res.Cost == dijkstra.Infinity, err)

	// Output: false true <nil>
}
