package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// plainGlyphs are single characters per state for colourless output.
var plainGlyphs = map[State]string{
	Free:    ".",
	Blocked: "#",
	Source:  "S",
	Target:  "T",
	Visited: "o",
	OnPath:  "*",
}

// Renderer draws a Board. In plain mode every cell is one ASCII glyph; in
// styled mode every cell is a two-column coloured block.
type Renderer struct {
	plain  bool
	styles map[State]lipgloss.Style
}

// NewRenderer returns a styled renderer, or a plain one when plain is set.
func NewRenderer(plain bool) *Renderer {
	block := lipgloss.NewStyle().Width(2)
	return &Renderer{
		plain: plain,
		styles: map[State]lipgloss.Style{
			Free:    block.Background(lipgloss.Color("#F5F5F5")),
			Blocked: block.Background(lipgloss.Color("#333333")),
			Source:  block.Background(lipgloss.Color("#1E63D6")),
			Target:  block.Background(lipgloss.Color("#D62F2F")),
			Visited: block.Background(lipgloss.Color("#9FD8F0")),
			OnPath:  block.Background(lipgloss.Color("#F2C12E")),
		},
	}
}

// Render returns the board as text, one line per row, no trailing newline.
func (r *Renderer) Render(b *Board) string {
	rows := make([]string, b.size)
	var sb strings.Builder
	for i := 0; i < b.size; i++ {
		sb.Reset()
		for j := 0; j < b.size; j++ {
			st := b.cells[i*b.size+j]
			if r.plain {
				sb.WriteString(plainGlyphs[st])
				continue
			}
			sb.WriteString(r.styles[st].Render("  "))
		}
		rows[i] = sb.String()
	}

	return strings.Join(rows, "\n")
}

// Legend describes the glyphs or colours used by r.
func (r *Renderer) Legend() string {
	if r.plain {
		return "S source  T target  # blocked  o visited  * path"
	}
	parts := []string{
		r.styles[Source].Render("  ") + " source",
		r.styles[Target].Render("  ") + " target",
		r.styles[Blocked].Render("  ") + " blocked",
		r.styles[Visited].Render("  ") + " visited",
		r.styles[OnPath].Render("  ") + " path",
	}
	return strings.Join(parts, "  ")
}
