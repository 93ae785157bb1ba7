// Package log builds the zerolog loggers used by the benchmark pipeline.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing human-readable output to w at the
// given level. Unknown level strings fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).
		Level(ToLevel(level)).
		With().
		Timestamp().
		Logger()
}

// NewJSON returns a structured JSON logger, for when the output is consumed
// by another process rather than a terminal.
func NewJSON(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ToLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Default returns the standard pipeline logger on stderr.
func Default(level string) zerolog.Logger {
	return New(os.Stderr, level)
}

// ToLevel maps a level string to a zerolog level.
func ToLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
