package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/render"
)

func newSolveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the grid once and print the final board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.prepare(cmd)
			if err != nil {
				return err
			}
			sol := s.finder.Solve(s.grid)

			r := render.NewRenderer(opts.plain)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, r.Render(newBoard(s.grid, sol)))
			fmt.Fprintln(out)
			fmt.Fprintln(out, r.Legend())
			fmt.Fprintln(out, summary(sol))

			return opts.finish(s)
		},
	}
	addGridFlags(cmd, opts)

	return cmd
}
