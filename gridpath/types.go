package gridpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for gridpath operations.
var (
	// ErrEmptyGrid indicates a grid with no cells.
	ErrEmptyGrid = errors.New("gridpath: grid must have at least one cell")
	// ErrNonSquare indicates rows of differing length or a non-square shape.
	ErrNonSquare = errors.New("gridpath: grid must be square")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridpath: cell out of bounds")
	// ErrProtectedCell indicates an attempt to block the source or target.
	ErrProtectedCell = errors.New("gridpath: source and target cannot be blocked")
	// ErrBadCell indicates an unrecognized character in a text map.
	ErrBadCell = errors.New("gridpath: unrecognized cell character")
	// ErrBadCoordinate indicates malformed "row,col" text.
	ErrBadCoordinate = errors.New("gridpath: malformed cell coordinate")
)

// Text map characters understood by FromRows and produced by Grid.String.
const (
	FreeChar    = '.'
	BlockedChar = '#'
	SourceChar  = 'S'
	TargetChar  = 'T'
)

// Cell is a grid coordinate. Row 0 is the top row, Col 0 the left column.
// Cells are plain values and serve directly as graph node keys.
type Cell struct {
	Row, Col int
}

// String formats c as "row,col".
func (c Cell) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// ParseCell parses "row,col" (surrounding spaces allowed).
func ParseCell(s string) (Cell, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrBadCoordinate, s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrBadCoordinate, s, err)
	}

	return Cell{Row: r, Col: c}, nil
}
