package telemetry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/gridpath"
	"github.com/katalvlaran/pathgrid/internal/telemetry"
)

func TestObserveSolve(t *testing.T) {
	m := telemetry.New()
	pf := gridpath.NewPathfinder(gridpath.WithObserver(m))

	open, _ := gridpath.NewGrid(3)
	walled, err := gridpath.FromRows([]string{"..T", "###", "S.."})
	require.NoError(t, err)
	pf.Solve(open)
	pf.Solve(open)
	pf.Solve(walled)

	n, err := testutil.GatherAndCount(m.Registry(), "pathgrid_solves_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per outcome")

	n, err = testutil.GatherAndCount(m.Registry(), "pathgrid_path_steps")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWriteTextfile(t *testing.T) {
	m := telemetry.New()
	g, _ := gridpath.NewGrid(2)
	m.ObserveSolve(gridpath.NewPathfinder().Solve(g))

	path := filepath.Join(t.TempDir(), "pathgrid.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pathgrid_solves_total{result="found",selection="heap"} 1`)
	assert.Contains(t, string(data), "pathgrid_graph_nodes 4")

	assert.Error(t, m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
