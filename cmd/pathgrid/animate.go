package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/render"
)

func newAnimateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Replay the search and the path on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.prepare(cmd)
			if err != nil {
				return err
			}
			sol := s.finder.Solve(s.grid)
			frames := render.Timeline(sol, s.interval)
			s.logger.Debug("replay scheduled", "frames", len(frames), "duration", render.Duration(frames))

			player := render.NewPlayer(render.NewBoard(s.grid), frames, render.NewRenderer(opts.plain), summary(sol))
			prog := tea.NewProgram(player,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err = prog.Run(); err != nil {
				return fmt.Errorf("animate: %w", err)
			}

			return opts.finish(s)
		},
	}
	addGridFlags(cmd, opts)
	cmd.Flags().DurationVar(&opts.interval, "interval", render.DefaultInterval, "delay between two marks")

	return cmd
}
