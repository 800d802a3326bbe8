package minefield

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

// ErrInvalidArgument is returned for negative or out-of-domain numeric input.
var ErrInvalidArgument = errors.New("invalid argument")

// Position addresses a single cell of a grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("[%d:%d]", p.Row, p.Col)
}

// Layout is the set of positions holding mines.
type Layout map[Position]struct{}

// NewLayout builds a layout from the given positions. Duplicates collapse.
func NewLayout(positions ...Position) Layout {
	l := make(Layout, len(positions))
	for _, p := range positions {
		l[p] = struct{}{}
	}
	return l
}

func (l Layout) Has(p Position) bool {
	_, ok := l[p]
	return ok
}

func (l Layout) Len() int {
	return len(l)
}

// Positions returns the layout in row-major order.
func (l Layout) Positions() []Position {
	ps := make([]Position, 0, len(l))
	for p := range l {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
	return ps
}

// GenerateMines picks count distinct positions uniformly at random from a
// width x height field. A nil r uses the package-level source.
func GenerateMines(r *rand.Rand, count, width, height int) (Layout, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: mine count must not be negative, got %d", ErrInvalidArgument, count)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: field size must not be negative, got %dx%d", ErrInvalidArgument, width, height)
	}
	if count > width*height {
		return nil, fmt.Errorf("%w: %d mines do not fit into %d cells", ErrInvalidArgument, count, width*height)
	}

	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	// Partial Fisher-Yates: take count items off the front of a shuffled
	// candidate list, swapping picks out of the remaining range.
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}

	layout := make(Layout, count)
	k := len(candidates)
	for range count {
		i := intN(k)
		idx := candidates[i]
		layout[Position{Row: idx / width, Col: idx % width}] = struct{}{}
		k--
		candidates[i] = candidates[k]
	}

	return layout, nil
}
