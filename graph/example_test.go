// Package graph_test provides runnable examples for the graph package.
package graph_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/graph"
)

// ExampleGraph_FindShortestPath builds a small square with a tail and
// prints both the visit trace and the resulting path.
//
//	A───B
//	│   │
//	C───D───E
func ExampleGraph_FindShortestPath() {
	g := graph.New[string]()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "E")

	var visited []string
	onVisit := graph.VisitorFunc[string](func(n string) { visited = append(visited, n) })

	path := g.FindShortestPath("A", "E", onVisit, graph.WithSelection(graph.SelectScan))
	fmt.Println("visited:", visited)
	fmt.Println("path:", path.Nodes())
	fmt.Println("hops:", path.Len())
	// Output:
	// visited: [B C D E]
	// path: [A B D E]
	// hops: 3
}

// ExampleGraph_Search shows distance queries on the shortest-path tree.
func ExampleGraph_Search() {
	g := graph.New[int]()
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	g.AddNode(9)

	tree := g.Search(1, nil)
	fmt.Println(tree.Distance(3), tree.Reachable(9))
	// Output: 2 false
}
