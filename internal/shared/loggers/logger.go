package loggers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// New creates a JSON logger on stdout at the given level.
// Returns an error if the log level string cannot be parsed.
func New(level string) (Logger, error) {
	return NewWithWriter(level, os.Stdout)
}

// NewConsole creates a human-readable logger on stderr, used by the CLIs.
func NewConsole(level string) (Logger, error) {
	return NewWithWriter(level, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Nop returns a disabled logger.
func Nop() Logger {
	return zerolog.Nop()
}

// Ctx extracts a logger from the context.
// Returns the disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
