package graph

import "container/heap"

// FindShortestPath returns the shortest path from source to target as an
// ordered sequence of edges, source first.
//
// The result is empty when source == target, when either endpoint is not
// in the graph, or when target is unreachable. None of these are errors.
//
// onVisit (may be nil) is called once for every strict distance
// improvement, in the order the improvements happen. A node can be
// reported several times if it is relaxed more than once before it is
// finalized.
//
// Complexity: O((V + E) log V) with SelectHeap, O(V² + E) with SelectScan.
func (g *Graph[K]) FindShortestPath(source, target K, onVisit Visitor[K], opts ...Option) Path[K] {
	if source == target || !g.HasNode(source) || !g.HasNode(target) {
		return nil
	}

	return g.Search(source, onVisit, opts...).PathTo(target)
}

// Search runs Dijkstra from source over every node of g and returns the
// resulting shortest-path tree. If source is absent the tree reaches
// nothing and onVisit is never called.
func (g *Graph[K]) Search(source K, onVisit Visitor[K], opts ...Option) *Tree[K] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(g.nodes)
	r := &runner[K]{
		g:     g,
		visit: onVisit,
		dist:  make([]int, n),
		prev:  make([]int, n),
		done:  make([]bool, n),
	}
	src, ok := g.index[source]
	if !ok {
		src = -1
	}
	r.init(src)
	if src >= 0 {
		switch cfg.Selection {
		case SelectScan:
			r.runScan()
		default:
			r.runHeap(src)
		}
	}

	return &Tree[K]{g: g, source: src, dist: r.dist, prev: r.prev}
}

// runner holds the mutable state of one search.
type runner[K comparable] struct {
	g     *Graph[K]
	visit Visitor[K]
	dist  []int  // best known distance per node index
	prev  []int  // predecessor per node index, -1 when none
	done  []bool // finalized nodes
}

// init sets every distance to Unreachable except the source.
func (r *runner[K]) init(src int) {
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = -1
	}
	if src >= 0 {
		r.dist[src] = 0
	}
}

// runScan finalizes nodes by linear search for the minimum distance. The
// first minimum in insertion order wins. Once only unreachable nodes are
// left no relaxation can succeed, so the loop stops there.
func (r *runner[K]) runScan() {
	n := len(r.dist)
	for remaining := n; remaining > 0; remaining-- {
		u := -1
		for i := 0; i < n; i++ {
			if r.done[i] {
				continue
			}
			if u < 0 || r.dist[i] < r.dist[u] {
				u = i
			}
		}
		if r.dist[u] == Unreachable {
			return
		}
		r.done[u] = true
		r.relax(u, nil)
	}
}

// runHeap finalizes nodes in (distance, push order) order using a lazy
// decrease-key binary heap; stale entries are skipped on pop.
func (r *runner[K]) runHeap(src int) {
	pq := make(nodePQ, 0, len(r.dist))
	var seq int
	push := func(v, d int) {
		heap.Push(&pq, &nodeItem{node: v, dist: d, seq: seq})
		seq++
	}
	push(src, 0)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if r.done[item.node] {
			continue
		}
		r.done[item.node] = true
		r.relax(item.node, push)
	}
}

// relax tries to improve every neighbor of the finalized node u by one hop.
// Each improvement updates dist and prev, notifies the visitor and, if push
// is set, enqueues the neighbor.
func (r *runner[K]) relax(u int, push func(v, d int)) {
	alt := r.dist[u] + 1
	for _, v := range r.g.adj[u] {
		if alt >= r.dist[v] {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		if r.visit != nil {
			r.visit.OnVisit(r.g.nodes[v])
		}
		if push != nil {
			push(v, alt)
		}
	}
}

// Tree is the result of Search: distances and predecessors from a single
// source over the graph as it was when the search ran.
type Tree[K comparable] struct {
	g      *Graph[K]
	source int
	dist   []int
	prev   []int
}

// Source returns the source node and whether it was present in the graph.
func (t *Tree[K]) Source() (K, bool) {
	var zero K
	if t.source < 0 {
		return zero, false
	}
	return t.g.nodes[t.source], true
}

// Distance returns the hop count from the source to k, or Unreachable.
func (t *Tree[K]) Distance(k K) int {
	i, ok := t.g.index[k]
	if !ok || i >= len(t.dist) {
		return Unreachable
	}
	return t.dist[i]
}

// Reachable reports whether k has a finite distance from the source.
func (t *Tree[K]) Reachable(k K) bool {
	return t.Distance(k) != Unreachable
}

// PathTo walks predecessors back from target and returns the path in
// source → target order. Empty when target is the source, is unknown, or
// was never reached.
func (t *Tree[K]) PathTo(target K) Path[K] {
	ti, ok := t.g.index[target]
	if !ok || t.source < 0 || ti >= len(t.prev) || ti == t.source || t.prev[ti] < 0 {
		return nil
	}
	path := make(Path[K], t.dist[ti])
	for v, k := ti, len(path)-1; v != t.source; v, k = t.prev[v], k-1 {
		path[k] = Step[K]{From: t.g.nodes[t.prev[v]], To: t.g.nodes[v]}
	}

	return path
}
