package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go-mines/internal/config"
	"go-mines/internal/difficulty"
	"go-mines/internal/game"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type sizeFlag struct {
	width, height *int
}

func (f sizeFlag) String() string {
	if f.width == nil || f.height == nil {
		return ""
	}
	return fmt.Sprintf("%dx%d", *f.width, *f.height)
}

func (f sizeFlag) Set(s string) error {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return fmt.Errorf("invalid size format: %s (use WIDTHxHEIGHT)", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return fmt.Errorf("invalid height %q: %w", h, err)
	}
	*f.width, *f.height = width, height
	return nil
}

type strictIntFlag int

func (i *strictIntFlag) String() string {
	return fmt.Sprint(int(*i))
}

func (i *strictIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = strictIntFlag(v)
	return nil
}

func (i *strictIntFlag) IsBoolFlag() bool { return true }

// parseFlags builds and validates the session configuration from args.
func parseFlags(fs *flag.FlagSet, args []string) (config.Config, error) {
	cfg := config.Default()
	level := strictIntFlag(cfg.Difficulty)

	size := sizeFlag{width: &cfg.Width, height: &cfg.Height}
	fs.Var(size, "size", "Board size as WIDTHxHEIGHT")
	fs.Var(size, "s", "Board size (shorthand)")

	fs.Var(&level, "difficulty", "Difficulty from 1 to 10")
	fs.Var(&level, "d", "Difficulty (shorthand)")

	fs.IntVar(&cfg.CellWidth, "cell-width", cfg.CellWidth, "Terminal columns per cell")
	fs.IntVar(&cfg.CellHeight, "cell-height", cfg.CellHeight, "Terminal rows per cell")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Colour theme: dark or light")
	fs.BoolVar(&cfg.RevealMinesOnLoss, "reveal-mines", false, "Show every mine when a round is lost")
	fs.StringVar(&cfg.LogFile, "log", "", "Write logs to this file")
	fs.BoolVar(&cfg.Debug, "debug", false, "Log at debug level, including mine layouts")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options]\n", fs.Name())
		fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fmt.Fprintf(fs.Output(), "   -s, --size=WxH          Board size (default %dx%d)\n", config.DefaultWidth, config.DefaultHeight)
		fmt.Fprintf(fs.Output(), "   -d, --difficulty=N      Difficulty %d..%d (default %d)\n", difficulty.Min, difficulty.Max, difficulty.Default)
		fmt.Fprintf(fs.Output(), "       --cell-width=N      Terminal columns per cell (default %d)\n", config.DefaultCellWidth)
		fmt.Fprintf(fs.Output(), "       --cell-height=N     Terminal rows per cell (default %d)\n", config.DefaultCellHeight)
		fmt.Fprintf(fs.Output(), "       --theme=NAME        dark or light\n")
		fmt.Fprintf(fs.Output(), "       --reveal-mines      Show every mine when a round is lost\n")
		fmt.Fprintf(fs.Output(), "       --log=FILE          Write logs to FILE\n")
		fmt.Fprintf(fs.Output(), "       --debug             Log at debug level\n")
		fmt.Fprintf(fs.Output(), "   -h, --help              Show this help message\n")
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Difficulty = int(level)

	return cfg, cfg.Validate()
}

// setupLogging sends game logs to a rotating file. The terminal belongs to
// the UI, so without -log everything is discarded.
func setupLogging(cfg config.Config) error {
	game.Log.SetOutput(io.Discard)
	if cfg.Debug {
		game.Log.SetLevel(logrus.DebugLevel)
	}
	if cfg.LogFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      game.Log.GetLevel(),
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	game.Log.AddHook(hook)

	game.Log.WithFields(cfg.Fields()).Info("starting")
	return nil
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	cfg, err := parseFlags(fs, os.Args[1:])
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := setupLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess, err := game.NewSession(cfg, nil)
	if err != nil {
		fmt.Printf("Error initializing game: %v\n", err)
		os.Exit(1)
	}

	model := newLocalState(sess)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
		os.Exit(1)
	}

	// Final output
	if played := sess.Scores.Played(); played > 0 {
		fmt.Printf("Rounds finished: %d, won: %d\n", played, sess.Scores.Wins())
		if best := sess.Scores.Best(sess.Config.Difficulty); best != nil {
			fmt.Printf("Best time at level %d: %ds\n", best.Difficulty, best.Seconds)
		}
	}
}
