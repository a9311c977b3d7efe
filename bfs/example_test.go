package bfs_test

import (
	"fmt"

	"github.com/ed-w-lee/advent-of-code-2021/bfs"
)

type cell struct{ r, c int }

// ExampleWalk_gridTraversal demonstrates BFS layering on a 3×3 grid (9 cells).
// We expect to see the start at (0,0), then its 2 neighbors, then the next frontier, etc.
func ExampleWalk_gridTraversal() {
	next := func(p cell) []cell {
		var out []cell
		for _, d := range []cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			q := cell{p.r + d.r, p.c + d.c}
			if q.r >= 0 && q.r < 3 && q.c >= 0 && q.c < 3 {
				out = append(out, q)
			}
		}
		return out
	}

	res, err := bfs.Walk(cell{0, 0}, next)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	for _, p := range res.Order {
		fmt.Printf("%d_%d:%d ", p.r, p.c, res.Depth[p])
	}
	fmt.Println()
	// Output:
	// 0_0:0 0_1:1 1_0:1 0_2:2 1_1:2 2_0:2 1_2:3 2_1:3 2_2:4
}
