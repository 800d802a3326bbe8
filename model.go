package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-mines/internal/difficulty"
	"go-mines/internal/game"
	"go-mines/internal/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen offset of the first cell: one title line and the board border.
const (
	originX = 1
	originY = 2
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255"))
	valueStyle = lipgloss.NewStyle().Padding(0, 1).
			Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255"))
)

type LocalState struct {
	Session *game.Session
	Palette theme.Palette
	CursorR int
	CursorC int
	Message string

	help help.Model

	// Round whose tick loop is running, zero when none is.
	tickingRound int
}

// TickMsg carries the round it was scheduled for, so a loop from a
// discarded round dies out instead of advancing the new clock.
type TickMsg struct {
	Round int
	Time  time.Time
}

func tickCmd(round int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Round: round, Time: t}
	})
}

func newLocalState(sess *game.Session) *LocalState {
	return &LocalState{
		Session: sess,
		Palette: sess.Config.Palette(),
		help:    help.New(),
	}
}

func (s *LocalState) Init() tea.Cmd {
	return nil
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.Round != s.Session.Round || !s.Session.CurrentGame.State.TimerRunning {
			if msg.Round == s.tickingRound {
				s.tickingRound = 0
			}
			return s, nil
		}
		s.Session.CurrentGame.Tick()
		return s, tickCmd(msg.Round)

	case tea.WindowSizeMsg:
		s.help.Width = msg.Width

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return s, nil
		}
		p, ok := s.Session.CurrentGame.PixelToCell(float64(msg.X-originX), float64(msg.Y-originY))
		if !ok {
			return s, nil
		}
		s.CursorR, s.CursorC = p.Row, p.Col
		switch msg.Button {
		case tea.MouseButtonLeft:
			return s, s.reveal()
		case tea.MouseButtonRight:
			s.flag()
		}

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *LocalState) handleKey(msg tea.KeyMsg) tea.Cmd {
	grid := s.Session.CurrentGame.State.Grid
	s.Message = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Up):
		s.CursorR = max(0, s.CursorR-1)
	case key.Matches(msg, keys.Down):
		s.CursorR = min(grid.Height()-1, s.CursorR+1)
	case key.Matches(msg, keys.Left):
		s.CursorC = max(0, s.CursorC-1)
	case key.Matches(msg, keys.Right):
		s.CursorC = min(grid.Width()-1, s.CursorC+1)
	case key.Matches(msg, keys.Reveal):
		return s.reveal()
	case key.Matches(msg, keys.Flag):
		s.flag()
	case key.Matches(msg, keys.Reset):
		if err := s.Session.NextGame(); err != nil {
			s.Message = err.Error()
		}
	case key.Matches(msg, keys.Harder):
		s.changeDifficulty(1)
	case key.Matches(msg, keys.Easier):
		s.changeDifficulty(-1)
	case key.Matches(msg, keys.Theme):
		s.Palette = s.Palette.Toggle()
	case key.Matches(msg, keys.Help):
		s.help.ShowAll = !s.help.ShowAll
	}
	return nil
}

// reveal opens the cell under the cursor and starts the clock loop when
// the round's first reveal started the timer.
func (s *LocalState) reveal() tea.Cmd {
	g := s.Session.CurrentGame
	g.PrimaryAction(s.CursorR, s.CursorC)

	if g.State.TimerRunning && s.tickingRound != s.Session.Round {
		s.tickingRound = s.Session.Round
		return tickCmd(s.Session.Round)
	}
	return nil
}

func (s *LocalState) flag() {
	s.Session.CurrentGame.SecondaryAction(s.CursorR, s.CursorC)
}

func (s *LocalState) changeDifficulty(delta int) {
	err := s.Session.SetDifficulty(s.Session.Config.Difficulty + delta)
	if errors.Is(err, game.ErrDifficultyLocked) {
		s.Message = "Finish or reset the round to change difficulty"
		return
	}
	if err != nil {
		s.Message = err.Error()
	}
}

func (s *LocalState) RenderBoard() string {
	g := s.Session.CurrentGame
	grid := g.State.Grid
	cfg := s.Session.Config

	rows := make([]string, 0, grid.Height())
	for r := 0; r < grid.Height(); r++ {
		cells := make([]string, 0, grid.Width())
		for c := 0; c < grid.Width(); c++ {
			glyph, style := s.cellStyle(r, c)
			style = style.Width(cfg.CellWidth).Height(cfg.CellHeight).Align(lipgloss.Center)
			if r == s.CursorR && c == s.CursorC && g.State.Accepting() {
				style = style.Reverse(true)
			}
			cells = append(cells, style.Render(glyph))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.Palette.Border).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (s *LocalState) cellStyle(r, c int) (string, lipgloss.Style) {
	p := s.Palette
	st := s.Session.CurrentGame.State
	cell := st.Grid.Cell(r, c)

	hidden := lipgloss.NewStyle().Background(p.Undiscovered)
	open := lipgloss.NewStyle().Background(p.Discovered)

	switch {
	case cell.Flagged:
		return "F", hidden.Foreground(p.Flag).Bold(true)
	case !cell.Revealed:
		return "", hidden
	case cell.Mine:
		if st.Exploded != nil && st.Exploded.Row == r && st.Exploded.Col == c {
			return "*", open.Background(p.Exploded).Foreground(p.Mine).Bold(true)
		}
		return "*", open.Foreground(p.Mine).Bold(true)
	case cell.Adjacent == 0:
		return "", open
	default:
		return fmt.Sprint(cell.Adjacent), open.Foreground(p.Number(cell.Adjacent)).Bold(true)
	}
}

func (s *LocalState) RenderStatus() string {
	st := s.Session.CurrentGame.State

	timeStyle := valueStyle
	switch {
	case st.Won():
		timeStyle = timeStyle.Foreground(s.Palette.WonTimer)
	case st.Lost():
		timeStyle = timeStyle.Foreground(s.Palette.LostTimer)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("MINES"), valueStyle.Render(fmt.Sprint(st.MinesLeft())),
		" ",
		labelStyle.Render("TIME"), timeStyle.Render(st.Clock()),
		" ",
		labelStyle.Render("LEVEL"), valueStyle.Render(fmt.Sprintf("%d/%d", st.Difficulty, difficulty.Max)),
	)
}

func (s *LocalState) View() string {
	sess := s.Session
	st := sess.CurrentGame.State

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("MINESWEEPER | ROUND %d", sess.Round)))
	b.WriteString("\n")
	b.WriteString(s.RenderBoard())
	b.WriteString("\n")
	b.WriteString(s.RenderStatus())
	b.WriteString("\n")

	switch {
	case st.Won():
		msg := fmt.Sprintf("You cleared the field in %s!", st.Clock())
		if sess.NewBestTime {
			msg += " New best time for this level."
		}
		b.WriteString(lipgloss.NewStyle().Foreground(s.Palette.WonTimer).Bold(true).Render(msg))
		b.WriteString("\n")
	case st.Lost():
		b.WriteString(lipgloss.NewStyle().Foreground(s.Palette.LostTimer).Bold(true).
			Render(fmt.Sprintf("Boom! Mine at %s. Press r to play again.", st.Exploded)))
		b.WriteString("\n")
	}

	if s.Message != "" {
		b.WriteString(messageStyle.Render(s.Message))
		b.WriteString("\n")
	}

	b.WriteString(s.help.View(keys))
	return b.String()
}
