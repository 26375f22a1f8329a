package graph_test

import (
	"testing"

	"github.com/katalvlaran/pathgrid/graph"
)

// lattice returns a side×side 4-connected lattice over integer ids.
func lattice(side int) *graph.Graph[int] {
	g := graph.New[int]()
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			id := i*side + j
			if i+1 < side {
				_ = g.AddEdge(id, id+side)
			}
			if j+1 < side {
				_ = g.AddEdge(id, id+1)
			}
		}
	}

	return g
}

// BenchmarkFindShortestPath_Heap runs corner-to-corner on a 100×100 lattice.
// Complexity: O((V+E) log V).
func BenchmarkFindShortestPath_Heap(b *testing.B) {
	const side = 100
	g := lattice(side)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FindShortestPath(side*(side-1), side-1, nil)
	}
}

// BenchmarkFindShortestPath_Scan runs the same query with the linear scan
// on a 30×30 lattice. Complexity: O(V²).
func BenchmarkFindShortestPath_Scan(b *testing.B) {
	const side = 30
	g := lattice(side)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FindShortestPath(side*(side-1), side-1, nil, graph.WithSelection(graph.SelectScan))
	}
}
