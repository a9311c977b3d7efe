// Package aoc2021 collects search-based puzzle solvers built on a small set
// of reusable grid and graph primitives.
//
// What is in here?
//
//	• Grid cost model: dense digit grids, sparse cells, 5×5 tiling with 1..9 wraparound
//	• Shortest paths: Dijkstra over grid cells with deterministic tie-breaking
//	• Traversals: generic BFS (basin flood fill), DFS path counting
//	• Graph primitives: thread-safe string-ID adjacency graph
//
// Everything is organized under these subpackages:
//
//	input/      line-oriented reading from files and readers
//	gridcost/   Coord, Grid, Parse, Tile, LowPoints, Basins
//	dijkstra/   ShortestPath with options, stats and optional logging
//	bfs/        generic breadth-first Walk with depth, filter and hooks
//	core/       Graph of string vertex IDs
//	dfs/        CountPaths under a revisit policy
//	riskpath/   lowest total risk, base and tiled
//	basin/      low-point risk sum and largest basin product
//	caves/      cave route counting
//	cmd/aoc/    command line entry point
//
// Quick example:
//
//	116
//	138   →  cheapest entry-cost route from top-left to bottom-right
//	213
//
//	g, _ := gridcost.Parse([]string{"116", "138", "213"})
//	res, _ := dijkstra.ShortestPath(g, gridcost.Coord{}, g.Goal())
//
//	go run ./cmd/aoc -day 15 -part 2 -input input/day15.txt
package aoc2021
