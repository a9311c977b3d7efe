// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, AdjacencyList).
// Determinism:
//   - Neighbors() and every AdjacencyList() slice are sorted lex asc.
package core

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Neighbors returns the IDs reachable from id in one step, sorted ascending.
// For directed graphs only outgoing edges count.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	ids := maps.Keys(nbrs)
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping every vertex ID to its sorted
// neighbor IDs. The returned slices are freshly allocated and safe to
// retain. Map key order is not deterministic; use Vertices() for that.
//
// Complexity:
//   - Time O(V + Σ d log d), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		ids := maps.Keys(nbrs)
		sort.Strings(ids)
		out[id] = ids
	}

	return out
}
