package config

import (
	"errors"
	"fmt"

	"go-mines/internal/difficulty"
	"go-mines/internal/theme"

	"github.com/sirupsen/logrus"
)

const (
	DefaultWidth      = 20
	DefaultHeight     = 20
	DefaultCellWidth  = 3
	DefaultCellHeight = 1

	// MaxSide keeps the board drawable on a terminal.
	MaxSide = 100
)

var ErrInvalidConfig = errors.New("invalid config")

// Config carries everything the host supplies when creating a session.
type Config struct {
	Width             int
	Height            int
	CellWidth         int // terminal columns per cell
	CellHeight        int // terminal rows per cell
	Difficulty        int
	Theme             string
	RevealMinesOnLoss bool
	LogFile           string
	Debug             bool
}

// Default is a 20x20 board at difficulty 2.
func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Difficulty: difficulty.Default,
		Theme:      theme.Dark.Name,
	}
}

// Validate rejects configurations that cannot produce a playable board.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 || c.Width > MaxSide || c.Height > MaxSide {
		return fmt.Errorf("%w: board size %dx%d (each side must be 1..%d)", ErrInvalidConfig, c.Width, c.Height, MaxSide)
	}
	if c.CellWidth < 1 || c.CellHeight < 1 {
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	}
	if c.Difficulty < difficulty.Min || c.Difficulty > difficulty.Max {
		return fmt.Errorf("%w: difficulty %d (must be %d..%d)", ErrInvalidConfig, c.Difficulty, difficulty.Min, difficulty.Max)
	}
	if _, err := theme.ByName(c.Theme); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Palette() theme.Palette {
	p, err := theme.ByName(c.Theme)
	if err != nil {
		return theme.Dark
	}
	return p
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"width":                c.Width,
		"height":               c.Height,
		"cell_width":           c.CellWidth,
		"cell_height":          c.CellHeight,
		"difficulty":           c.Difficulty,
		"theme":                c.Theme,
		"reveal_mines_on_loss": c.RevealMinesOnLoss,
		"log_file":             c.LogFile,
		"debug":                c.Debug,
	}
}
