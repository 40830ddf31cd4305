// Package logutil configures structured logging for the extension.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

// LevelTrace sits below Debug; dispatch logs every call at this level.
const LevelTrace slog.Level = slog.LevelDebug - 4

// NewLogger returns a text logger writing to w at the given level.
// Records carry their source file by base name only.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: shortenAttr,
	}))
}

func shortenAttr(_ []string, attr slog.Attr) slog.Attr {
	switch v := attr.Value.Any().(type) {
	case slog.Level:
		if attr.Key == slog.LevelKey && v == LevelTrace {
			attr.Value = slog.StringValue("TRACE")
		}
	case *slog.Source:
		if attr.Key == slog.SourceKey {
			v.File = filepath.Base(v.File)
		}
	}
	return attr
}

// Trace logs at LevelTrace on the default logger. The record is attributed
// to Trace's caller.
func Trace(msg string, args ...any) {
	ctx := context.Background()
	logger := slog.Default()
	if !logger.Enabled(ctx, LevelTrace) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(2, pcs[:]) // skip runtime.Callers and Trace
	record := slog.NewRecord(time.Now(), LevelTrace, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}
