// Package graph provides an undirected, unit-cost adjacency structure and
// a single-source shortest-path query that reports its progress.
//
// What:
//
//   - Graph[K] stores nodes of any comparable key type (grid cells, ints,
//     strings) with symmetric, set-semantics adjacency.
//   - FindShortestPath runs Dijkstra from a source and returns the ordered
//     edge sequence to a target.
//   - Every successful relaxation is reported to a Visitor, in the order it
//     happens, so a consumer can replay the search.
//   - Hops runs a plain breadth-first search and returns hop counts.
//
// Why:
//
//   - Grid path finding: the gridpath package translates a blocked/free
//     matrix into a Graph[gridpath.Cell] and animates the visit trace.
//   - Testing: Hops is an independent oracle for the Dijkstra result.
//
// Selection strategies:
//
//   - SelectHeap (default): binary heap keyed by (distance, push order).
//   - SelectScan: linear scan over nodes in insertion order, first minimum
//     wins. O(V²), kept for small graphs where visit order should follow
//     node insertion order exactly.
//
// Both strategies finalize the minimum-distance node next, so path lengths
// are identical; only the order of equal-distance visits may differ.
//
// Complexity:
//
//   - AddEdge:          O(1) amortized.
//   - FindShortestPath: O((V + E) log V) with SelectHeap, O(V² + E) with SelectScan.
//   - Hops:             O(V + E).
//
// Errors:
//
//   - ErrSelfLoop: AddEdge called with u == v.
//
// A Graph is not safe for concurrent mutation. Once construction is
// finished it may be queried from several goroutines at once.
package graph
