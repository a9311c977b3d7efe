// Package bfs provides a breadth-first walk over any graph that can be
// described by a neighbor function, returning unweighted distances,
// parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook (when visiting; may abort with an error).
//   - Filtering of individual neighbor edges via WithFilter.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so the visit sequence is reproducible whenever that order is.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.Walk(start, grid.Neighbors,
//	    bfs.WithMaxDepth[gridcost.Coord](3),
//	    bfs.WithFilter(func(_, to gridcost.Coord) bool { v, _ := grid.At(to); return v < 9 }),
//	)
//
// Errors
//
//   - ErrNilNext              if the neighbor function is nil.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - context errors          if the context is done mid-walk.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
