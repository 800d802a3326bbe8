package geometry

import (
	"fmt"

	"go-mines/internal/minefield"
)

// Mapper converts pointer coordinates, relative to the top-left corner of
// the rendered grid, into cell positions.
type Mapper struct {
	cols   []float64
	rows   []float64
	width  float64
	height float64
}

// NewMapper precomputes the boundaries for a grid drawn with cells of
// cellWidth x cellHeight pixels.
func NewMapper(grid *minefield.Grid, cellWidth, cellHeight float64) (*Mapper, error) {
	if cellWidth < 1 || cellHeight < 1 {
		return nil, fmt.Errorf("%w: cell size must be at least 1x1, got %gx%g", ErrInvalidArgument, cellWidth, cellHeight)
	}

	width := float64(grid.Width()) * cellWidth
	height := float64(grid.Height()) * cellHeight

	cols, err := BucketBoundaries(grid.Width(), width)
	if err != nil {
		return nil, fmt.Errorf("column boundaries: %w", err)
	}
	rows, err := BucketBoundaries(grid.Height(), height)
	if err != nil {
		return nil, fmt.Errorf("row boundaries: %w", err)
	}

	return &Mapper{cols: cols, rows: rows, width: width, height: height}, nil
}

// Bounds returns the pixel size of the rendered grid.
func (m *Mapper) Bounds() (width, height float64) {
	return m.width, m.height
}

// Cell returns the cell under x, y. Coordinates outside the rendered grid
// are rejected before they reach the boundary search.
func (m *Mapper) Cell(x, y float64) (minefield.Position, bool) {
	if !(x >= 0 && x < m.width && y >= 0 && y < m.height) {
		return minefield.Position{}, false
	}

	col, err := CoordinateToIndex(x, m.cols)
	if err != nil || col == OutOfRange {
		return minefield.Position{}, false
	}
	row, err := CoordinateToIndex(y, m.rows)
	if err != nil || row == OutOfRange {
		return minefield.Position{}, false
	}

	return minefield.Position{Row: row, Col: col}, true
}
