package game

import (
	"errors"
	"math/rand/v2"

	"go-mines/internal/config"
	"go-mines/internal/difficulty"
	"go-mines/internal/minefield"
	"go-mines/internal/scoring"

	"github.com/sirupsen/logrus"
)

// ErrDifficultyLocked is returned when the difficulty is changed while the
// clock is running. Reset first.
var ErrDifficultyLocked = errors.New("difficulty cannot change while the timer runs")

// Session plays consecutive rounds with one configuration and keeps the
// scoreboard for them.
type Session struct {
	Config      config.Config
	CurrentGame *Game
	Scores      *scoring.Scoreboard

	// Last finished round, set by the win/loss notifications.
	LastEntry   *scoring.ScoreHistoryEntry
	NewBestTime bool
	Changed     []minefield.Position
	Round       int
}

func NewSession(cfg config.Config, r *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		Config: cfg,
		Scores: scoring.NewScoreboard(),
	}

	g, err := NewGame(cfg.Width, cfg.Height, cfg.Difficulty, Options{
		CellWidth:         float64(cfg.CellWidth),
		CellHeight:        float64(cfg.CellHeight),
		RevealMinesOnLoss: cfg.RevealMinesOnLoss,
		Listener:          s,
		Rand:              r,
	})
	if err != nil {
		return nil, err
	}

	s.CurrentGame = g
	s.Round = 1
	return s, nil
}

// NextGame discards the current round and starts a fresh one.
func (s *Session) NextGame() error {
	if err := s.CurrentGame.Reset(); err != nil {
		return err
	}
	s.startRound()
	return nil
}

// SetDifficulty starts a new round at level. It is refused while the
// clock runs.
func (s *Session) SetDifficulty(level int) error {
	if s.CurrentGame.State.TimerRunning {
		return ErrDifficultyLocked
	}
	level = difficulty.Clamp(level)
	if err := s.CurrentGame.SetDifficulty(level); err != nil {
		return err
	}
	s.Config.Difficulty = level
	s.startRound()
	return nil
}

func (s *Session) startRound() {
	s.Round++
	s.LastEntry = nil
	s.NewBestTime = false
	s.Changed = nil
}

// CanChangeDifficulty reports whether SetDifficulty would be accepted.
func (s *Session) CanChangeDifficulty() bool {
	return !s.CurrentGame.State.TimerRunning
}

// IsFinished reports whether the current round has ended.
func (s *Session) IsFinished() bool {
	return s.CurrentGame.State.IsOver()
}

// CellsChanged collects cells the view should repaint.
func (s *Session) CellsChanged(cells []minefield.Position) {
	s.Changed = append(s.Changed, cells...)
}

// GameWon records a win on the scoreboard.
func (s *Session) GameWon(elapsed int) {
	s.record(elapsed, true)
	Log.WithFields(logrus.Fields{
		"round":   s.Round,
		"elapsed": elapsed,
		"best":    s.NewBestTime,
	}).Info("round won")
}

// GameLost records a loss on the scoreboard.
func (s *Session) GameLost(mine minefield.Position) {
	s.record(s.CurrentGame.State.Elapsed, false)
	Log.WithFields(logrus.Fields{
		"round": s.Round,
		"mine":  mine.String(),
	}).Info("round lost")
}

func (s *Session) record(elapsed int, won bool) {
	entry := s.Scores.Record(s.CurrentGame.State.Difficulty, s.Config.Width, s.Config.Height, elapsed, won)
	s.LastEntry = &entry
	s.NewBestTime = s.Scores.GotBestTime(entry)
}
