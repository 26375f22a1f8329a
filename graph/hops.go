package graph

// Hops returns the breadth-first hop count from source to every node it
// can reach, source included at 0. Returns an empty map when source is not
// in the graph.
//
// Hops shares no code with the Dijkstra search and serves as an
// independent reachability and distance check.
//
// Complexity: O(V + E) time and memory.
func (g *Graph[K]) Hops(source K) map[K]int {
	depth := make(map[K]int)
	src, ok := g.index[source]
	if !ok {
		return depth
	}

	seen := make([]bool, len(g.nodes))
	seen[src] = true
	depth[source] = 0
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			if seen[v] {
				continue
			}
			seen[v] = true
			depth[g.nodes[v]] = depth[g.nodes[u]] + 1
			queue = append(queue, v)
		}
	}

	return depth
}
