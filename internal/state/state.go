package state

import (
	"context"

	"go-mines/internal/minefield"

	"github.com/looplab/fsm"
)

// Outcome is the externally visible result of a round.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Listener receives the side effects of state transitions. Terminal
// notifications fire once per round.
type Listener interface {
	CellsChanged(cells []minefield.Position)
	GameWon(elapsed int)
	GameLost(mine minefield.Position)
}

type nopListener struct{}

func (nopListener) CellsChanged([]minefield.Position) {}
func (nopListener) GameWon(int)                       {}
func (nopListener) GameLost(minefield.Position)       {}

type Options struct {
	RevealMinesOnLoss bool // reveal every mine on loss, not only the one hit
	Listener          Listener
}

type State struct {
	Grid         *minefield.Grid
	Difficulty   int
	Elapsed      int // seconds
	TimerRunning bool
	Outcome      Outcome
	Exploded     *minefield.Position // mine that ended the round
	LastRevealed []minefield.Position
	FSM          *fsm.FSM
	Options      Options
}

// NewState wraps a grid whose mines are already placed.
func NewState(grid *minefield.Grid, difficulty int, opts Options) *State {
	if opts.Listener == nil {
		opts.Listener = nopListener{}
	}

	s := &State{
		Grid:       grid,
		Difficulty: difficulty,
		Options:    opts,
	}

	s.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{"start"}, Dst: "ready"},

		// Opening a cell
		{Name: "reveal", Src: []string{"ready", "playing"}, Dst: "revealing"},
		{Name: "detonate", Src: []string{"revealing"}, Dst: "lost"},
		{Name: "clear", Src: []string{"revealing"}, Dst: "won"},
		{Name: "resume", Src: []string{"revealing"}, Dst: "playing"},

		// Timer
		{Name: "tick", Src: []string{"playing"}, Dst: "timeCheck"},
		{Name: "timePassed", Src: []string{"timeCheck"}, Dst: "playing"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_reveal": func(ctx context.Context, e *fsm.Event) {
			p, ok := targetOf(e)
			if !ok || !s.CanReveal(p.Row, p.Col) {
				e.Cancel()
			}
		},
		"enter_revealing": func(ctx context.Context, e *fsm.Event) {
			p, _ := targetOf(e)
			s.LastRevealed = s.Grid.Reveal(p.Row, p.Col)

			if s.Grid.Cell(p.Row, p.Col).Mine {
				s.Exploded = &p
				e.FSM.Event(ctx, "detonate")
				return
			}

			s.Options.Listener.CellsChanged(s.LastRevealed)

			if s.Grid.IsSolved() {
				e.FSM.Event(ctx, "clear")
				return
			}

			e.FSM.Event(ctx, "resume")
		},
		"enter_playing": func(ctx context.Context, e *fsm.Event) {
			s.TimerRunning = true
		},
		"enter_lost": func(ctx context.Context, e *fsm.Event) {
			s.TimerRunning = false
			s.Outcome = Lost
			if s.Options.RevealMinesOnLoss {
				s.LastRevealed = append(s.LastRevealed, s.Grid.RevealMines()...)
			}
			s.Options.Listener.CellsChanged(s.LastRevealed)
			s.Options.Listener.GameLost(*s.Exploded)
		},
		"enter_won": func(ctx context.Context, e *fsm.Event) {
			s.TimerRunning = false
			s.Outcome = Won
			s.Options.Listener.GameWon(s.Elapsed)
		},
		"enter_timeCheck": func(ctx context.Context, e *fsm.Event) {
			s.Elapsed++
			e.FSM.Event(ctx, "timePassed")
		},
	}
}

func targetOf(e *fsm.Event) (minefield.Position, bool) {
	if len(e.Args) == 0 {
		return minefield.Position{}, false
	}
	p, ok := e.Args[0].(minefield.Position)
	return p, ok
}
