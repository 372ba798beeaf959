// Package logger builds the process logger.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// Config controls the logger built by New.
type Config struct {
	Debug bool
}

// New returns a text logger writing to w. Without Debug everything is
// discarded, so normal runs print nothing beyond the tool's own messages.
func New(w io.Writer, cfg Config) *slog.Logger {
	if !cfg.Debug || w == nil {
		return slog.New(slog.DiscardHandler)
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}
