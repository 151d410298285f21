// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "list created", slog.Int64("list_id", id))
//
// Error logs from application services carry the operation name, the list and
// entry identifiers involved, and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to delete entry",
//	    slog.String("operation", "DeleteEntry"),
//	    slog.Int64("list_id", listID),
//	    slog.Int64("entry_id", entryID),
//	    slog.Any("error", err),
//	)
//
// When the logging middleware is active the context logger already carries
// request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a *slog.Logger writing to w.
//
// Level is one of "debug", "info", "warn" or "error" (case-insensitive);
// anything else means info. Format "text" selects slog.TextHandler, every
// other value selects slog.JSONHandler. Debug loggers include source
// locations.
//
// Every handler built here redacts credentials and truncates oversized
// string values such as entry descriptions.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newReplaceAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record. Components fall back to
// it when constructed without a logger.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
