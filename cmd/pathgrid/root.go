package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/graph"
	"github.com/katalvlaran/pathgrid/gridpath"
	"github.com/katalvlaran/pathgrid/internal/config"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/internal/telemetry"
	"github.com/katalvlaran/pathgrid/render"
)

const defaultSize = 10

// options carries every flag shared by solve and animate.
type options struct {
	logLevel    string
	logFormat   string
	configPath  string
	size        int
	blocks      []string
	selection   string
	plain       bool
	metricsFile string
	interval    time.Duration
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "pathgrid",
		Short:        "Shortest obstacle-free path across a square grid",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(newSolveCmd(opts), newAnimateCmd(opts))

	return root
}

// addGridFlags registers the flags that describe the grid and the search.
func addGridFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML scenario file")
	f.IntVarP(&opts.size, "size", "n", defaultSize, "grid side length when no scenario is given")
	f.StringArrayVarP(&opts.blocks, "block", "b", nil, "blocked cell as row,col (repeatable)")
	f.StringVar(&opts.selection, "selection", "", "node selection: heap or scan (overrides scenario)")
	f.BoolVar(&opts.plain, "plain", false, "render ASCII glyphs instead of colours")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")
}

// session is everything a command needs after flag resolution.
type session struct {
	logger   *slog.Logger
	grid     *gridpath.Grid
	finder   *gridpath.Pathfinder
	metrics  *telemetry.Metrics
	interval time.Duration
}

// prepare resolves flags and the optional scenario into a ready session.
func (o *options) prepare(cmd *cobra.Command) (*session, error) {
	logger, err := logging.New(logging.Config{Level: o.logLevel, Format: o.logFormat}, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	scenario := &config.Scenario{Size: o.size}
	if o.configPath != "" {
		if scenario, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
		logger.Info("scenario loaded", "path", o.configPath)
	}

	grid, err := scenario.Grid()
	if err != nil {
		return nil, err
	}
	for _, b := range o.blocks {
		c, err := gridpath.ParseCell(b)
		if err != nil {
			return nil, fmt.Errorf("--block: %w", err)
		}
		if err = grid.Block(c); err != nil {
			return nil, fmt.Errorf("--block: %w", err)
		}
	}

	sel, err := scenario.SelectionStrategy()
	if err != nil {
		return nil, err
	}
	if o.selection != "" {
		if sel, err = graph.ParseSelection(o.selection); err != nil {
			return nil, fmt.Errorf("--selection: %w", err)
		}
	}

	interval := scenario.Interval
	if cmd.Flags().Changed("interval") || interval == 0 {
		interval = o.interval
	}

	metrics := telemetry.New()
	finder := gridpath.NewPathfinder(
		gridpath.WithLogger(logger),
		gridpath.WithSelection(sel),
		gridpath.WithObserver(metrics),
	)
	logger.Debug("session ready",
		"size", grid.Size(),
		"blocked", len(grid.BlockedCells()),
		"selection", sel.String(),
		"interval", interval,
	)

	return &session{logger: logger, grid: grid, finder: finder, metrics: metrics, interval: interval}, nil
}

// finish writes metrics when requested.
func (o *options) finish(s *session) error {
	if o.metricsFile == "" {
		return nil
	}
	if err := s.metrics.WriteTextfile(o.metricsFile); err != nil {
		return err
	}
	s.logger.Info("metrics written", "path", o.metricsFile)
	return nil
}

// summary describes a solution in one line.
func summary(sol *gridpath.Solution) string {
	if !sol.Found() {
		return fmt.Sprintf("no path from %v to %v (visited %d cells)", sol.Source, sol.Target, len(sol.Visited))
	}
	return fmt.Sprintf("path from %v to %v: %d steps (visited %d cells)", sol.Source, sol.Target, sol.Steps(), len(sol.Visited))
}

// newBoard returns a board for grid with the replay of sol already applied.
func newBoard(grid *gridpath.Grid, sol *gridpath.Solution) *render.Board {
	b := render.NewBoard(grid)
	b.ApplyAll(render.Timeline(sol, render.DefaultInterval))
	return b
}
