// Command pathgrid finds and shows the shortest route across a grid with
// obstacles.
//
// The source is the bottom-left cell and the target the top-right cell.
// Obstacles come from a YAML scenario (--config), from repeated --block
// flags, or both.
//
// Usage:
//
//	pathgrid solve --size 8 --block 3,3 --block 4,3 --block 5,3
//	pathgrid solve --config maze.yaml --plain
//	pathgrid animate --config maze.yaml --interval 20ms
//	pathgrid solve --config maze.yaml --metrics-file /var/lib/node_exporter/pathgrid.prom
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
