package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// DefaultLogLevel keeps stderr quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// newLogger returns a logrus logger writing to w at the named level.
// Timestamps are dropped when w is not a terminal, so piped output stays
// diffable.
func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, &UsageError{Reason: err.Error()}
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}

	return logger, nil
}
