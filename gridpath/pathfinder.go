package gridpath

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathgrid/graph"
)

// Solution is the buffered outcome of one Solve call. A consumer can replay
// Visited and then Path on its own schedule.
type Solution struct {
	Source    Cell
	Target    Cell
	Visited   []Cell          // relaxed cells in the order they were reported
	Path      []Cell          // source → target, empty when no route exists
	Nodes     int             // nodes in the built graph
	Edges     int             // edges in the built graph
	Selection graph.Selection // strategy used by the search
	Elapsed   time.Duration   // graph build plus search
}

// Found reports whether a route was found.
func (s *Solution) Found() bool { return len(s.Path) > 0 }

// Steps returns the number of moves on the path.
func (s *Solution) Steps() int {
	if len(s.Path) == 0 {
		return 0
	}
	return len(s.Path) - 1
}

// Observer receives every completed Solution, for example to record metrics.
type Observer interface {
	ObserveSolve(s *Solution)
}

// PathfinderOption configures a Pathfinder.
type PathfinderOption func(*Pathfinder)

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l *slog.Logger) PathfinderOption {
	return func(p *Pathfinder) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithSelection sets the node selection strategy of the search.
func WithSelection(s graph.Selection) PathfinderOption {
	return func(p *Pathfinder) {
		p.selection = s
	}
}

// WithObserver registers o to receive each Solution. A nil observer is ignored.
func WithObserver(o Observer) PathfinderOption {
	return func(p *Pathfinder) {
		if o != nil {
			p.observer = o
		}
	}
}

// Pathfinder solves grids between their fixed source and target.
// A Pathfinder holds no per-grid state and may be reused.
type Pathfinder struct {
	logger    *slog.Logger
	selection graph.Selection
	observer  Observer
}

// NewPathfinder returns a Pathfinder with SelectHeap and a discarding logger,
// adjusted by opts.
func NewPathfinder(opts ...PathfinderOption) *Pathfinder {
	p := &Pathfinder{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		selection: graph.SelectHeap,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Solve builds the graph for g, searches from g.Source() to g.Target(),
// and returns the buffered visit trace and path.
func (p *Pathfinder) Solve(g *Grid) *Solution {
	start := time.Now()
	sol := &Solution{
		Source:    g.Source(),
		Target:    g.Target(),
		Selection: p.selection,
	}

	gr := BuildGraph(g)
	sol.Nodes, sol.Edges = gr.NodeCount(), gr.EdgeCount()
	p.logger.Debug("grid graph built",
		"size", g.Size(),
		"blocked", len(g.BlockedCells()),
		"nodes", sol.Nodes,
		"edges", sol.Edges,
	)

	record := graph.VisitorFunc[Cell](func(c Cell) {
		sol.Visited = append(sol.Visited, c)
	})
	sol.Path = gr.FindShortestPath(sol.Source, sol.Target, record, graph.WithSelection(p.selection)).Nodes()
	sol.Elapsed = time.Since(start)

	p.logger.Debug("grid solved",
		"source", sol.Source.String(),
		"target", sol.Target.String(),
		"selection", p.selection.String(),
		"visited", len(sol.Visited),
		"steps", sol.Steps(),
		"found", sol.Found(),
		"elapsed", sol.Elapsed,
	)
	if p.observer != nil {
		p.observer.ObserveSolve(sol)
	}

	return sol
}
