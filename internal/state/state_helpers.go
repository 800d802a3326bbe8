package state

import (
	"fmt"
)

// CanReveal reports whether the cell at row, col may be opened by the
// primary action: it must exist, be closed, and carry no flag.
func (s *State) CanReveal(row, col int) bool {
	c := s.Grid.Cell(row, col)
	return c != nil && !c.Revealed && !c.Flagged
}

// Accepting reports whether the round still takes cell actions.
func (s *State) Accepting() bool {
	return s.FSM.Can("reveal")
}

func (s *State) IsOver() bool {
	return s.Outcome != InProgress
}

func (s *State) Won() bool {
	return s.Outcome == Won
}

func (s *State) Lost() bool {
	return s.Outcome == Lost
}

// MinesLeft is the mine count minus placed flags; it goes negative when
// the player over-flags.
func (s *State) MinesLeft() int {
	return s.Grid.Mines().Len() - s.Grid.FlagCount()
}

// Clock formats the elapsed time as MM:SS.
func (s *State) Clock() string {
	return fmt.Sprintf("%02d:%02d", s.Elapsed/60, s.Elapsed%60)
}
