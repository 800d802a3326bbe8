package game

import (
	"math/rand/v2"
	"testing"

	"go-mines/internal/config"
	"go-mines/internal/minefield"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, cfg config.Config) *Session {
	t.Helper()
	s, err := NewSession(cfg, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	return s
}

// rigMines replaces the current round's layout.
func rigMines(t *testing.T, s *Session, mines ...minefield.Position) {
	t.Helper()
	require.NoError(t, s.CurrentGame.State.Grid.PlaceMines(minefield.NewLayout(mines...)))
}

func TestNewSession_Defaults(t *testing.T) {
	s := newTestSession(t, config.Default())

	assert.Equal(t, 1, s.Round)
	assert.Equal(t, 30, s.CurrentGame.State.Grid.Mines().Len())
	assert.Equal(t, 400, s.CurrentGame.State.Grid.Size())
	assert.True(t, s.CanChangeDifficulty())
	assert.False(t, s.IsFinished())
	assert.Equal(t, 0, s.Scores.Played())
}

func TestNewSession_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 0

	_, err := NewSession(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSession_WinIsRecorded(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 4, 4
	s := newTestSession(t, cfg)
	rigMines(t, s, minefield.Position{Row: 3, Col: 3})

	res := s.CurrentGame.PrimaryAction(0, 0)
	require.True(t, res.StateChanged)

	assert.True(t, s.IsFinished())
	require.NotNil(t, s.LastEntry)
	assert.True(t, s.LastEntry.Won)
	assert.Equal(t, 4, s.LastEntry.Width)
	assert.True(t, s.NewBestTime)
	assert.Len(t, s.Changed, 15)
	assert.Equal(t, 1, s.Scores.Wins())
}

func TestSession_LossIsRecorded(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 3, 3
	s := newTestSession(t, cfg)
	rigMines(t, s, minefield.Position{Row: 0, Col: 0})

	s.CurrentGame.PrimaryAction(1, 1)
	s.CurrentGame.Tick()
	s.CurrentGame.PrimaryAction(0, 0)

	require.NotNil(t, s.LastEntry)
	assert.False(t, s.LastEntry.Won)
	assert.Equal(t, 1, s.LastEntry.Seconds)
	assert.False(t, s.NewBestTime)
	assert.Equal(t, 1, s.Scores.Played())
	assert.Equal(t, 0, s.Scores.Wins())
}

func TestSession_DifficultyLockedWhileTimerRuns(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 3, 3
	s := newTestSession(t, cfg)
	rigMines(t, s, minefield.Position{Row: 0, Col: 0})

	s.CurrentGame.PrimaryAction(1, 1)
	require.True(t, s.CurrentGame.State.TimerRunning)

	assert.False(t, s.CanChangeDifficulty())
	assert.ErrorIs(t, s.SetDifficulty(5), ErrDifficultyLocked)
	assert.Equal(t, 2, s.CurrentGame.State.Difficulty)

	// Once the round ends the level can change again.
	s.CurrentGame.PrimaryAction(0, 0)
	require.NoError(t, s.SetDifficulty(5))
	assert.Equal(t, 5, s.CurrentGame.State.Difficulty)
	assert.Equal(t, 5, s.Config.Difficulty)
	assert.Nil(t, s.LastEntry)
}

func TestSession_SetDifficultyClamps(t *testing.T) {
	s := newTestSession(t, config.Default())

	require.NoError(t, s.SetDifficulty(99))
	assert.Equal(t, 10, s.Config.Difficulty)

	require.NoError(t, s.SetDifficulty(-3))
	assert.Equal(t, 1, s.Config.Difficulty)
	assert.Equal(t, 19, s.CurrentGame.State.Grid.Mines().Len())
}

func TestSession_NextGame(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 3, 3
	s := newTestSession(t, cfg)
	rigMines(t, s, minefield.Position{Row: 0, Col: 0})
	s.CurrentGame.PrimaryAction(0, 0)
	require.True(t, s.IsFinished())

	require.NoError(t, s.NextGame())

	assert.Equal(t, 2, s.Round)
	assert.False(t, s.IsFinished())
	assert.Nil(t, s.LastEntry)
	assert.Empty(t, s.Changed)
	assert.Equal(t, 0, s.CurrentGame.State.Elapsed)
	assert.Equal(t, 1, s.Scores.Played(), "scores survive across rounds")
}
