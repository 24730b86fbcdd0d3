package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Level is one of debug, info, warn, error. Empty falls back to LOG_LEVEL, then info.
	Level string
	// Pretty switches to human-readable console output.
	Pretty bool
	// Output defaults to stderr.
	Output io.Writer
}

// New builds a zerolog logger from options.
func New(opts Options) zerolog.Logger {
	level := opts.Level
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	if opts.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	return zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ValidLevel reports whether level names a supported level. Empty is valid.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
