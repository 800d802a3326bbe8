package minefield

import (
	"fmt"
	"strings"
)

// Cell is one square of the field.
type Cell struct {
	Row      int
	Col      int
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // mines among the up to 8 neighbours
}

func (c *Cell) reveal() {
	c.Revealed = true
	c.Flagged = false
}

var (
	ringDirs = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	floodDirs = [4][2]int{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
)

// Grid is a fixed width x height field of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an empty grid. Both dimensions must be at least 1.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidArgument, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for row := range height {
		for col := range width {
			c := &g.cells[row*width+col]
			c.Row = row
			c.Col = col
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Size() int   { return g.width * g.height }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Cell returns the cell at row, col or nil when out of range.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[row*g.width+col]
}

// PlaceMines replaces the mine layout and recomputes adjacency counts.
func (g *Grid) PlaceMines(layout Layout) error {
	for p := range layout {
		if !g.InBounds(p.Row, p.Col) {
			return fmt.Errorf("%w: mine %s outside %dx%d grid", ErrInvalidArgument, p, g.width, g.height)
		}
	}

	for i := range g.cells {
		c := &g.cells[i]
		c.Mine = layout.Has(Position{Row: c.Row, Col: c.Col})
	}
	g.ComputeAdjacency()
	return nil
}

// Mines returns the current layout.
func (g *Grid) Mines() Layout {
	l := Layout{}
	for _, c := range g.cells {
		if c.Mine {
			l[Position{Row: c.Row, Col: c.Col}] = struct{}{}
		}
	}
	return l
}

// ComputeAdjacency recounts mines around every cell. Off-grid neighbours
// are excluded, never wrapped.
func (g *Grid) ComputeAdjacency() {
	for i := range g.cells {
		c := &g.cells[i]
		c.Adjacent = 0
		for _, d := range ringDirs {
			if n := g.Cell(c.Row+d[0], c.Col+d[1]); n != nil && n.Mine {
				c.Adjacent++
			}
		}
	}
}

// Reveal opens the cell at row, col. A zero count spreads the reveal
// through 4-adjacent safe cells, continuing only from zero-count cells.
// It returns the newly revealed positions in reveal order.
func (g *Grid) Reveal(row, col int) []Position {
	start := g.Cell(row, col)
	if start == nil || start.Revealed {
		return nil
	}

	start.reveal()
	revealed := []Position{{Row: row, Col: col}}
	if start.Mine || start.Adjacent != 0 {
		return revealed
	}

	stack := []Position{{Row: row, Col: col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range floodDirs {
			n := g.Cell(p.Row+d[0], p.Col+d[1])
			if n == nil || n.Mine || n.Revealed {
				continue
			}
			n.reveal()
			np := Position{Row: n.Row, Col: n.Col}
			revealed = append(revealed, np)
			if n.Adjacent == 0 {
				stack = append(stack, np)
			}
		}
	}

	return revealed
}

// RevealMines opens every mine that is still hidden.
func (g *Grid) RevealMines() []Position {
	var revealed []Position
	for i := range g.cells {
		c := &g.cells[i]
		if c.Mine && !c.Revealed {
			c.reveal()
			revealed = append(revealed, Position{Row: c.Row, Col: c.Col})
		}
	}
	return revealed
}

// ToggleFlag flips the flag on a hidden cell. ok is false when the cell is
// revealed or out of range.
func (g *Grid) ToggleFlag(row, col int) (flagged bool, ok bool) {
	c := g.Cell(row, col)
	if c == nil || c.Revealed {
		return false, false
	}
	c.Flagged = !c.Flagged
	return c.Flagged, true
}

func (g *Grid) FlagCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Flagged {
			n++
		}
	}
	return n
}

// Hidden returns how many safe cells are still closed.
func (g *Grid) Hidden() int {
	n := 0
	for _, c := range g.cells {
		if !c.Mine && !c.Revealed {
			n++
		}
	}
	return n
}

// IsSolved reports whether every safe cell has been revealed.
func (g *Grid) IsSolved() bool {
	return g.Hidden() == 0
}

// String renders the grid for debugging: '*' mine, 'F' flag, '.' hidden,
// digits for revealed counts.
func (g *Grid) String() string {
	var b strings.Builder
	for row := range g.height {
		for col := range g.width {
			c := g.cells[row*g.width+col]
			switch {
			case c.Revealed && c.Mine:
				b.WriteByte('*')
			case c.Revealed:
				b.WriteByte(byte('0' + c.Adjacent))
			case c.Flagged:
				b.WriteByte('F')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
