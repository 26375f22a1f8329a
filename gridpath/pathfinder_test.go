package gridpath_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/pathgrid/graph"
	"github.com/katalvlaran/pathgrid/gridpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingObserver records the solutions it receives.
type countingObserver struct {
	got []*gridpath.Solution
}

func (o *countingObserver) ObserveSolve(s *gridpath.Solution) { o.got = append(o.got, s) }

// TestSolve_Open covers a found route: trace, path, graph size and observer.
func TestSolve_Open(t *testing.T) {
	g, err := gridpath.NewGrid(4)
	require.NoError(t, err)
	obs := &countingObserver{}
	pf := gridpath.NewPathfinder(gridpath.WithObserver(obs), gridpath.WithSelection(graph.SelectScan))

	sol := pf.Solve(g)
	require.True(t, sol.Found())
	assert.Equal(t, 6, sol.Steps())
	assert.Equal(t, g.Source(), sol.Path[0])
	assert.Equal(t, g.Target(), sol.Path[len(sol.Path)-1])
	assert.Len(t, sol.Visited, 15)
	assert.Equal(t, 16, sol.Nodes)
	assert.Equal(t, 24, sol.Edges)
	assert.Equal(t, graph.SelectScan, sol.Selection)
	require.Len(t, obs.got, 1)
	assert.Same(t, sol, obs.got[0])
}

// TestSolve_NoRoute keeps the partial trace and returns an empty path.
func TestSolve_NoRoute(t *testing.T) {
	g, err := gridpath.FromRows([]string{
		"...T",
		"####",
		"....",
		"S...",
	})
	require.NoError(t, err)

	sol := gridpath.NewPathfinder().Solve(g)
	assert.False(t, sol.Found())
	assert.Zero(t, sol.Steps())
	assert.Len(t, sol.Visited, 7, "only the source's half is explored")
	for _, c := range sol.Visited {
		assert.GreaterOrEqual(t, c.Row, 2, "visited %v beyond the wall", c)
	}
}

// TestSolve_Logs ensures debug output goes to the configured logger.
func TestSolve_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g, _ := gridpath.NewGrid(2)

	gridpath.NewPathfinder(gridpath.WithLogger(logger), gridpath.WithLogger(nil)).Solve(g)

	out := buf.String()
	assert.Contains(t, out, "grid graph built")
	assert.Contains(t, out, "grid solved")
	assert.Contains(t, out, "steps=2")
	assert.Contains(t, out, "selection=heap")
}
