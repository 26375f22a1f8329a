package render

import "github.com/katalvlaran/pathgrid/gridpath"

// State is the displayed state of one cell.
type State int

// Cell states.
const (
	Free State = iota
	Blocked
	Source
	Target
	Visited
	OnPath
)

// Board is a mutable display overlay of a grid. It never changes the grid
// it was created from.
type Board struct {
	size  int
	cells []State // row-major
}

// NewBoard captures g's blocked cells and corners.
func NewBoard(g *gridpath.Grid) *Board {
	n := g.Size()
	b := &Board{size: n, cells: make([]State, n*n)}
	for _, c := range g.BlockedCells() {
		b.cells[b.index(c)] = Blocked
	}
	b.cells[b.index(g.Source())] = Source
	b.cells[b.index(g.Target())] = Target

	return b
}

// Size returns the side length.
func (b *Board) Size() int { return b.size }

// At returns the state of c.
func (b *Board) At(c gridpath.Cell) State {
	return b.cells[b.index(c)]
}

// Apply marks f's cell. Corners and blocked cells keep their state.
func (b *Board) Apply(f Frame) {
	i := b.index(f.Cell)
	switch b.cells[i] {
	case Source, Target, Blocked:
		return
	}
	if f.Kind == KindPath {
		b.cells[i] = OnPath
	} else {
		b.cells[i] = Visited
	}
}

// ApplyAll marks every frame in order.
func (b *Board) ApplyAll(frames []Frame) {
	for _, f := range frames {
		b.Apply(f)
	}
}

func (b *Board) index(c gridpath.Cell) int {
	return c.Row*b.size + c.Col
}
