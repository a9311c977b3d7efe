// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/ed-w-lee/advent-of-code-2021/core"
)

// BenchmarkAddEdge measures adding edges to a star in the default
// undirected configuration.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i))
	}
}

// BenchmarkNeighbors measures sorted neighbor retrieval on a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Root")
	}
}
