// Package core provides a small, thread-safe in-memory Graph over string
// vertex IDs, the shared substrate of the path-counting solvers.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to] = struct{}{}
//   - A single sync.RWMutex, so graphs may be built from several goroutines
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    • Directed graphs store only “from→to”.
//	    • Undirected graphs mirror edges in adjacency[to][from].
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error               // O(1)
//	HasVertex(id string) bool                // O(1)
//	AddEdge(from, to string) error           // O(1), auto-adds vertices
//	HasEdge(from, to string) bool            // O(1)
//	Neighbors(id string) ([]string, error)   // O(d·log d), sorted
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // O(V·log V), sorted
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1)
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("start", "A")
//	_ = g.AddEdge("A", "end")
//	nbrs, _ := g.Neighbors("A") // [end start]
package core
