// File: methods_edges.go
// Role: Edge lifecycle & queries.
package core

// AddEdge joins from and to, adding either vertex if missing.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyVertexID) and loop policy (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, ensure both vertices exist.
//   - Stage 3: Record from→to, and to→from unless the graph is directed.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing edge changes nothing.
//   - On error the graph is left unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	if _, exists := g.adjacency[from][to]; exists {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	if !g.directed {
		g.adjacency[to][from] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge from→to exists. For undirected graphs
// HasEdge(a, b) == HasEdge(b, a).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
