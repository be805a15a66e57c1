package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Log output formats accepted by NewHandler.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatText = "text"
)

// NewHandler builds a slog handler writing to f. The auto format picks the
// text handler for terminals and JSON otherwise.
func NewHandler(f *os.File, format, level string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	switch strings.ToLower(format) {
	case FormatText:
		return slog.NewTextHandler(f, opts)
	case FormatJSON:
		return slog.NewJSONHandler(f, opts)
	}

	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return slog.NewTextHandler(f, opts)
	}
	return slog.NewJSONHandler(f, opts)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
