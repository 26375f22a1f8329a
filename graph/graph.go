package graph

// Graph is an undirected graph with unit edge costs.
//
// Nodes are stored densely in first-insertion order; neighbor lists keep
// edge-insertion order. That makes every traversal deterministic for a
// given construction sequence.
type Graph[K comparable] struct {
	nodes []K           // index → key, insertion order
	index map[K]int     // key → index
	adj   [][]int       // index → neighbor indices, insertion order
	edges map[edge]bool // normalized (lo, hi) pairs already present
}

// edge is an unordered pair of node indices with lo < hi.
type edge struct {
	lo, hi int
}

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{lo: a, hi: b}
}

// New returns an empty Graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		index: make(map[K]int),
		edges: make(map[edge]bool),
	}
}

// AddNode registers k as an isolated node if it is not present yet.
func (g *Graph[K]) AddNode(k K) {
	g.ensure(k)
}

// ensure returns the index of k, registering it first when absent.
func (g *Graph[K]) ensure(k K) int {
	if i, ok := g.index[k]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, k)
	g.adj = append(g.adj, nil)
	g.index[k] = i

	return i
}

// AddEdge registers u and v if absent and connects them in both directions.
// Adding an edge that already exists is a no-op.
// Returns ErrSelfLoop when u == v; the graph is left unchanged.
func (g *Graph[K]) AddEdge(u, v K) error {
	if u == v {
		return ErrSelfLoop
	}
	ui, vi := g.ensure(u), g.ensure(v)
	e := newEdge(ui, vi)
	if g.edges[e] {
		return nil
	}
	g.edges[e] = true
	g.adj[ui] = append(g.adj[ui], vi)
	g.adj[vi] = append(g.adj[vi], ui)

	return nil
}

// HasNode reports whether k is a node of g.
func (g *Graph[K]) HasNode(k K) bool {
	_, ok := g.index[k]
	return ok
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph[K]) HasEdge(u, v K) bool {
	ui, ok := g.index[u]
	if !ok {
		return false
	}
	vi, ok := g.index[v]
	if !ok {
		return false
	}

	return g.edges[newEdge(ui, vi)]
}

// Nodes returns all nodes in insertion order.
func (g *Graph[K]) Nodes() []K {
	out := make([]K, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Neighbors returns the neighbors of k in edge-insertion order,
// or nil if k is not in the graph.
func (g *Graph[K]) Neighbors(k K) []K {
	i, ok := g.index[k]
	if !ok {
		return nil
	}
	out := make([]K, len(g.adj[i]))
	for j, n := range g.adj[i] {
		out[j] = g.nodes[n]
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[K]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph[K]) EdgeCount() int { return len(g.edges) }
