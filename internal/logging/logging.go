package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init creates and sets the package-level default slog logger. Logs
// always go to stderr so they never mix with stories printed on
// stdout; interactive runs get a TextHandler, quiet (piped) runs a
// JSONHandler.
func Init(interactive bool, level slog.Level) {
	slog.SetDefault(New(os.Stderr, interactive, level))
}

// New builds a logger writing to w. Exposed for tests and for the
// library facade, which must not touch the process default.
func New(w io.Writer, interactive bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if interactive {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
