package gridpath

import (
	"fmt"
	"strings"
)

// Grid is a square matrix of free and blocked cells with a fixed Source
// (bottom-left) and Target (top-right). Source and Target can never be
// blocked.
type Grid struct {
	size    int
	blocked []bool // row-major
	source  Cell
	target  Cell
}

// NewGrid returns a size×size grid with every cell free.
// Returns ErrEmptyGrid if size < 1.
// Complexity: O(size²).
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrEmptyGrid, size)
	}

	return &Grid{
		size:    size,
		blocked: make([]bool, size*size),
		source:  Cell{Row: size - 1, Col: 0},
		target:  Cell{Row: 0, Col: size - 1},
	}, nil
}

// FromRows parses a text map, one string per row. '#' is blocked; '.',
// 'S' and 'T' are free. The map must be square. Blocking the source or
// target corner yields ErrProtectedCell.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, i, len(row), g.size)
		}
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case FreeChar, SourceChar, TargetChar:
			case BlockedChar:
				if err = g.Block(Cell{Row: i, Col: j}); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadCell, row[j], i, j)
			}
		}
	}

	return g, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// Source returns the bottom-left start cell.
func (g *Grid) Source() Cell { return g.source }

// Target returns the top-right goal cell.
func (g *Grid) Target() Cell { return g.target }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// IsProtected reports whether c is the source or target.
func (g *Grid) IsProtected(c Cell) bool {
	return c == g.source || c == g.target
}

// IsBlocked reports whether c is blocked. Cells outside the grid count as
// blocked.
func (g *Grid) IsBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c)]
}

// Block marks c as an obstacle. Blocking an already blocked cell is a no-op.
func (g *Grid) Block(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	if g.IsProtected(c) {
		return fmt.Errorf("%w: %v", ErrProtectedCell, c)
	}
	g.blocked[g.index(c)] = true

	return nil
}

// BlockAll blocks every cell in cells, stopping at the first error.
func (g *Grid) BlockAll(cells ...Cell) error {
	for _, c := range cells {
		if err := g.Block(c); err != nil {
			return err
		}
	}
	return nil
}

// BlockedCells lists blocked cells in row-major order.
func (g *Grid) BlockedCells() []Cell {
	var out []Cell
	for i, b := range g.blocked {
		if b {
			out = append(out, g.cell(i))
		}
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.blocked = make([]bool, len(g.blocked))
	copy(c.blocked, g.blocked)
	return &c
}

// Rows renders g as a text map understood by FromRows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	var sb strings.Builder
	for i := 0; i < g.size; i++ {
		sb.Reset()
		for j := 0; j < g.size; j++ {
			c := Cell{Row: i, Col: j}
			switch {
			case c == g.source:
				sb.WriteByte(SourceChar)
			case c == g.target:
				sb.WriteByte(TargetChar)
			case g.IsBlocked(c):
				sb.WriteByte(BlockedChar)
			default:
				sb.WriteByte(FreeChar)
			}
		}
		rows[i] = sb.String()
	}

	return rows
}

// String joins Rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// index maps c to its row-major offset.
func (g *Grid) index(c Cell) int {
	return c.Row*g.size + c.Col
}

// cell converts a row-major offset back to a Cell.
func (g *Grid) cell(idx int) Cell {
	return Cell{Row: idx / g.size, Col: idx % g.size}
}
