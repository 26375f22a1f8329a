package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/gridpath"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_OpenGrid(t *testing.T) {
	out, _, err := run(t, "solve", "--size", "3", "--plain")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, byte('T'), lines[0][2])
	assert.Equal(t, byte('S'), lines[2][0])
	assert.Contains(t, out, "path from 2,0 to 0,2: 4 steps")
}

func TestSolve_BlockedRow(t *testing.T) {
	out, _, err := run(t, "solve", "-n", "3", "--plain", "-b", "1,0", "-b", "1,1", "--block", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "no path from 2,0 to 0,2")
	assert.Contains(t, out, "###")
}

func TestSolve_FlagErrors(t *testing.T) {
	cases := map[string]struct {
		args []string
		want error
	}{
		"MalformedBlock": {[]string{"solve", "--block", "1;2"}, gridpath.ErrBadCoordinate},
		"BlockSource":    {[]string{"solve", "--size", "4", "--block", "3,0"}, gridpath.ErrProtectedCell},
		"BlockOutside":   {[]string{"solve", "--size", "4", "--block", "9,9"}, gridpath.ErrOutOfBounds},
		"ZeroSize":       {[]string{"solve", "--size", "0"}, gridpath.ErrEmptyGrid},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, _, err := run(t, "solve", "--selection", "dfs")
	assert.Error(t, err)
	_, _, err = run(t, "solve", "--log-format", "xml")
	assert.Error(t, err)
	_, _, err = run(t, "animate", "--block", "x")
	assert.ErrorIs(t, err, gridpath.ErrBadCoordinate)
}

func TestSolve_ConfigAndMetrics(t *testing.T) {
	dir := t.TempDir()
	scenario := filepath.Join(dir, "maze.yaml")
	require.NoError(t, os.WriteFile(scenario, []byte(`
rows:
  - "...T"
  - ".##."
  - ".#.."
  - "S#.."
selection: scan
`), 0o600))
	metrics := filepath.Join(dir, "pathgrid.prom")

	out, errOut, err := run(t, "solve", "-c", scenario, "--plain", "--metrics-file", metrics, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "path from 3,0 to 0,3: 6 steps")
	assert.Contains(t, errOut, "scenario loaded")
	assert.Contains(t, errOut, "selection=scan")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pathgrid_solves_total{result="found",selection="scan"} 1`)
}
