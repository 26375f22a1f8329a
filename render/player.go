package render

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg fires when the replay clock reaches at.
type tickMsg struct {
	at time.Duration
}

// Player is a bubbletea model that replays a timeline on a board. It quits
// on its own once the last frame is drawn; q or ctrl+c abort, and enter or
// space skip to the end.
type Player struct {
	board    *Board
	frames   []Frame
	renderer *Renderer
	summary  string
	next     int
	elapsed  time.Duration
}

// NewPlayer returns a Player for frames on b. summary is printed below the
// board once the replay completes.
func NewPlayer(b *Board, frames []Frame, r *Renderer, summary string) *Player {
	return &Player{board: b, frames: frames, renderer: r, summary: summary}
}

// Done reports whether every frame has been applied.
func (p *Player) Done() bool { return p.next >= len(p.frames) }

// Init starts the replay clock.
func (p *Player) Init() tea.Cmd {
	return p.schedule()
}

// Update advances the replay or handles key presses.
func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		p.advance(msg.at)
		return p, p.schedule()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case "enter", " ":
			p.advance(Duration(p.frames))
			return p, tea.Quit
		}
	}

	return p, nil
}

// View draws the board and a progress or summary line.
func (p *Player) View() string {
	var sb strings.Builder
	sb.WriteString(p.renderer.Render(p.board))
	sb.WriteString("\n\n")
	if p.Done() {
		sb.WriteString(p.summary)
	} else {
		fmt.Fprintf(&sb, "replaying %d/%d  (enter: skip, q: quit)", p.next, len(p.frames))
	}
	sb.WriteString("\n")

	return sb.String()
}

// advance applies every pending frame due at or before at.
func (p *Player) advance(at time.Duration) {
	p.elapsed = at
	for p.next < len(p.frames) && p.frames[p.next].At <= at {
		p.board.Apply(p.frames[p.next])
		p.next++
	}
}

// schedule returns a tick for the next pending frame, or quits when none
// is left.
func (p *Player) schedule() tea.Cmd {
	if p.Done() {
		return tea.Quit
	}
	at := p.frames[p.next].At
	return tea.Tick(at-p.elapsed, func(time.Time) tea.Msg {
		return tickMsg{at: at}
	})
}
