package game

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go-mines/internal/difficulty"
	"go-mines/internal/geometry"
	"go-mines/internal/minefield"
	"go-mines/internal/state"

	"github.com/sirupsen/logrus"
)

// Options configure a Game beyond its size and difficulty.
type Options struct {
	CellWidth         float64 // pixels per cell, horizontally
	CellHeight        float64 // pixels per cell, vertically
	RevealMinesOnLoss bool
	Listener          state.Listener
	Rand              *rand.Rand // nil uses the global source
}

// Result describes what a primary action did.
type Result struct {
	StateChanged bool
	Revealed     []minefield.Position
	Outcome      state.Outcome
}

// FlagResult describes what a secondary action did.
type FlagResult struct {
	Flagged bool
	Changed bool
}

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State  *state.State
	Mapper *geometry.Mapper

	width  int
	height int
	opts   Options
}

// NewGame creates a round on a width x height board with mines for the
// given difficulty. Difficulty is clamped to 1..10.
func NewGame(width, height, level int, opts Options) (*Game, error) {
	if opts.CellWidth == 0 {
		opts.CellWidth = 1
	}
	if opts.CellHeight == 0 {
		opts.CellHeight = 1
	}

	g := &Game{width: width, height: height, opts: opts}
	if err := g.newRound(level); err != nil {
		return nil, err
	}
	return g, nil
}

// newRound builds a fresh grid and state machine, discarding every reveal
// and flag of the previous round.
func (g *Game) newRound(level int) error {
	level = difficulty.Clamp(level)

	grid, err := minefield.NewGrid(g.width, g.height)
	if err != nil {
		return err
	}
	count, err := difficulty.MineCount(grid.Size(), level)
	if err != nil {
		return err
	}
	layout, err := minefield.GenerateMines(g.opts.Rand, count, g.width, g.height)
	if err != nil {
		return fmt.Errorf("could not place mines: %w", err)
	}
	if err := grid.PlaceMines(layout); err != nil {
		return err
	}

	mapper, err := geometry.NewMapper(grid, g.opts.CellWidth, g.opts.CellHeight)
	if err != nil {
		return fmt.Errorf("could not build pointer mapper: %w", err)
	}

	g.State = state.NewState(grid, level, state.Options{
		RevealMinesOnLoss: g.opts.RevealMinesOnLoss,
		Listener:          g.opts.Listener,
	})
	g.Mapper = mapper
	g.Init()

	Log.WithFields(logrus.Fields{
		"width":      g.width,
		"height":     g.height,
		"difficulty": level,
		"mines":      count,
	}).Info("new round")
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.Debugf("layout:\n%s", layoutString(grid))
	}

	return nil
}

// Init moves the state machine into its first playable state.
func (g *Game) Init() {
	_ = g.State.FSM.Event(context.Background(), "initGame")
}

// Reset starts a new round at the current difficulty.
func (g *Game) Reset() error {
	return g.newRound(g.State.Difficulty)
}

// SetDifficulty starts a new round at level, keeping the board size.
func (g *Game) SetDifficulty(level int) error {
	return g.newRound(level)
}

// PrimaryAction opens the cell at row, col.
func (g *Game) PrimaryAction(row, col int) Result {
	// If game is already over, exit
	if !g.State.Accepting() {
		return Result{Outcome: g.State.Outcome}
	}

	// Flagged, open, or out-of-range targets are canceled by the state
	// machine before anything changes.
	err := g.State.FSM.Event(context.Background(), "reveal", minefield.Position{Row: row, Col: col})
	if err != nil {
		Log.WithFields(logrus.Fields{"row": row, "col": col}).Debugf("reveal ignored: %v", err)
		return Result{Outcome: g.State.Outcome}
	}

	res := Result{
		StateChanged: g.State.Outcome != state.InProgress,
		Revealed:     g.State.LastRevealed,
		Outcome:      g.State.Outcome,
	}
	Log.WithFields(logrus.Fields{
		"row":      row,
		"col":      col,
		"revealed": len(res.Revealed),
		"outcome":  res.Outcome,
	}).Debug("reveal")
	return res
}

// SecondaryAction toggles the flag on a closed cell.
func (g *Game) SecondaryAction(row, col int) FlagResult {
	if !g.State.Accepting() {
		return FlagResult{}
	}

	flagged, ok := g.State.Grid.ToggleFlag(row, col)
	if !ok {
		return FlagResult{}
	}
	g.State.Options.Listener.CellsChanged([]minefield.Position{{Row: row, Col: col}})
	return FlagResult{Flagged: flagged, Changed: true}
}

// PixelToCell maps a pointer position relative to the grid's top-left
// corner onto a cell.
func (g *Game) PixelToCell(x, y float64) (minefield.Position, bool) {
	return g.Mapper.Cell(x, y)
}

// Tick advances the clock by one second while the timer runs and returns
// the elapsed seconds.
func (g *Game) Tick() int {
	if !g.State.TimerRunning {
		return g.State.Elapsed
	}
	_ = g.State.FSM.Event(context.Background(), "tick")
	return g.State.Elapsed
}

// layoutString renders the grid with every mine shown, for debug logs.
func layoutString(grid *minefield.Grid) string {
	b := []byte(grid.String())
	for p := range grid.Mines() {
		b[p.Row*(grid.Width()+1)+p.Col] = '*'
	}
	return string(b)
}
