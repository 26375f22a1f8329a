package gridpath

import "github.com/katalvlaran/pathgrid/graph"

// BuildGraph converts the free cells of g into an undirected graph keyed
// by Cell. Each free cell is linked to the free cell below it and the free
// cell to its right; graph.Graph makes every link symmetric, which yields
// full 4-connectivity. Cells are scanned column by column, so node
// insertion order (and thus SelectScan tie-breaking) follows columns.
//
// Blocked cells, and free cells with no free neighbor, are absent from the
// result. The graph is a snapshot: later changes to g do not affect it.
//
// Complexity: O(N²) time and memory.
func BuildGraph(g *Grid) *graph.Graph[Cell] {
	out := graph.New[Cell]()
	for j := 0; j < g.size; j++ {
		for i := 0; i < g.size; i++ {
			u := Cell{Row: i, Col: j}
			if g.IsBlocked(u) {
				continue
			}
			// u and its forward neighbors are always distinct, so AddEdge
			// cannot report ErrSelfLoop here.
			if down := (Cell{Row: i + 1, Col: j}); !g.IsBlocked(down) {
				_ = out.AddEdge(u, down)
			}
			if right := (Cell{Row: i, Col: j + 1}); !g.IsBlocked(right) {
				_ = out.AddEdge(u, right)
			}
		}
	}

	return out
}

// FindPath builds the graph for g once and returns the shortest route from
// source to target as cells, source first and target last.
//
// The result is empty when source equals target, when either is blocked or
// outside the grid, or when no free route connects them. onVisit (may be
// nil) receives every relaxed cell in order.
func FindPath(g *Grid, source, target Cell, onVisit graph.Visitor[Cell], opts ...graph.Option) []Cell {
	if g.IsBlocked(source) || g.IsBlocked(target) {
		return nil
	}

	return BuildGraph(g).FindShortestPath(source, target, onVisit, opts...).Nodes()
}

// Reachable reports whether a free route connects g's source and target.
func Reachable(g *Grid) bool {
	if g.source == g.target {
		return true
	}
	_, ok := BuildGraph(g).Hops(g.source)[g.target]
	return ok
}
