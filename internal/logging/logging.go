// Package logging builds the slog loggers used by the command line tools.
// Library packages never construct loggers themselves; they accept one through
// their options and discard output by default.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Supported output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatDiscard = "discard"
)

// LevelSilent sits above every standard level.
const LevelSilent = slog.Level(100)

// New returns a logger writing to w in the requested format. Unknown formats
// fall back to text.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts))
	case FormatDiscard:
		return Discard()
	default:
		return slog.New(slog.NewTextHandler(w, opts))
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelSilent}))
}

// LevelFromString converts a level name (debug, info, warn, error) to a
// slog.Level. Unrecognised names map to info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromVerbosity maps repeated -v flags onto a level. Quiet wins over any
// verbosity; zero means warn, one info, two or more debug.
func LevelFromVerbosity(verbosity int, quiet bool) slog.Level {
	if quiet {
		return LevelSilent
	}
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
