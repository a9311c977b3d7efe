package bfs_test

import (
	"testing"

	"github.com/ed-w-lee/advent-of-code-2021/bfs"
)

// BenchmarkWalk_Chain measures Walk on a linear chain of N+1 integers.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 10000
	next := func(v int) []int {
		if v >= N {
			return nil
		}
		return []int{v + 1}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(0, next)
	}
}

// BenchmarkWalk_BinaryTree runs Walk on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkWalk_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices
	nodeCount := (1 << depth) - 1
	next := func(v int) []int {
		if 2*v+1 > nodeCount {
			return nil
		}
		return []int{2 * v, 2*v + 1}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(1, next)
	}
}
