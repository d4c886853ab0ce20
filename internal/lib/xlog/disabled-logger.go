package xlog

import (
	"context"
	"io"
	"log/slog"
)

var DisabledLogger = slog.New(DisabledLogHandler{})

type DisabledLogHandler struct{}

func (d DisabledLogHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (d DisabledLogHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (d DisabledLogHandler) WithAttrs([]slog.Attr) slog.Handler {
	return d
}

func (d DisabledLogHandler) WithGroup(string) slog.Handler {
	return d
}

// Setup installs the default logger: nothing when quiet, debug text on w when
// debug, otherwise the standard logger is kept.
func Setup(w io.Writer, debug bool, quiet bool) {
	switch {
	case quiet:
		slog.SetDefault(DisabledLogger)
	case debug:
		slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}
