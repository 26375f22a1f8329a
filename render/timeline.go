// Package render turns a gridpath.Solution into something a person can
// watch: a timed replay schedule, a board overlay, and terminal output.
//
// The core search has no notion of time. Timeline assigns each visit and
// each path cell a slot interval apart, in the order they were produced,
// so the search appears to spread before the path is drawn. Frames for the
// target cell keep their slot but are dropped, leaving the target's own
// marking intact.
package render

import (
	"time"

	"github.com/katalvlaran/pathgrid/gridpath"
)

// DefaultInterval is the delay between two consecutive marks.
const DefaultInterval = 5 * time.Millisecond

// Kind says how a frame marks its cell.
type Kind int

const (
	// KindVisit marks a cell the search relaxed.
	KindVisit Kind = iota
	// KindPath marks a cell on the final route.
	KindPath
)

// String returns "visit" or "path".
func (k Kind) String() string {
	if k == KindPath {
		return "path"
	}
	return "visit"
}

// Frame is one scheduled mark.
type Frame struct {
	At   time.Duration // offset from the start of the replay
	Cell gridpath.Cell
	Kind Kind
}

// Timeline schedules every visit, then every path cell after the source,
// at consecutive multiples of interval. A non-positive interval falls back
// to DefaultInterval.
func Timeline(sol *gridpath.Solution, interval time.Duration) []Frame {
	if interval <= 0 {
		interval = DefaultInterval
	}
	frames := make([]Frame, 0, len(sol.Visited)+len(sol.Path))
	var slot time.Duration
	mark := func(c gridpath.Cell, k Kind) {
		slot += interval
		if c == sol.Target {
			return
		}
		frames = append(frames, Frame{At: slot, Cell: c, Kind: k})
	}

	for _, c := range sol.Visited {
		mark(c, KindVisit)
	}
	if len(sol.Path) > 1 {
		for _, c := range sol.Path[1:] {
			mark(c, KindPath)
		}
	}

	return frames
}

// Duration returns the offset of the last frame, or zero for none.
func Duration(frames []Frame) time.Duration {
	if len(frames) == 0 {
		return 0
	}
	return frames[len(frames)-1].At
}
