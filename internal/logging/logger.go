// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// ParseLevel maps a config level name to a slog level. Unknown names map to
// warn.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New returns a text logger at level writing to path, or to stderr when path
// is empty. The returned closer must be called before exit.
func New(level, path string) (*slog.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if path != "" {
		fw, err := NewFileWriter(path)
		if err != nil {
			return nil, nil, err
		}
		w, closer = fw, fw
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
