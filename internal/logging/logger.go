// Package logging provides structured logging configuration using log/slog.
//
// Request IDs from chi's RequestID middleware and load IDs from the leaderboard
// service are attached to log entries so a single refresh can be traced from
// the HTTP request through the sheet fetch.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

type contextKey string

const ctxKeyLoadID contextKey = "load_id"

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// The server logs to stdout; the CLI passes stderr so its table output stays clean.
func Setup(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// ContextWithLoadID tags ctx with the ID of the load it belongs to.
func ContextWithLoadID(ctx context.Context, loadID string) context.Context {
	return context.WithValue(ctx, ctxKeyLoadID, loadID)
}

// LoadIDFromContext returns the load ID stored by ContextWithLoadID, or "".
func LoadIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyLoadID).(string); ok {
		return v
	}
	return ""
}

// FromContext returns a logger enriched with request context.
//
// A chi request ID becomes request_id and a load ID becomes load_id:
//
//	logger := logging.FromContext(r.Context())
//	logger.Info("leaderboard rendered", "rows", len(board.Rows))
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	if loadID := LoadIDFromContext(ctx); loadID != "" {
		logger = logger.With("load_id", loadID)
	}

	return logger
}
