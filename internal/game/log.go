package game

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log is shared by the game packages. It discards output until the host
// points it somewhere; the terminal belongs to the UI.
var Log = &logrus.Logger{
	Out:       io.Discard,
	Formatter: &logrus.TextFormatter{DisableColors: true},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}
