// Package logging defines the structured-logging interface shared by the
// TaskHub server components. The server emits JSON lines through the slog
// implementation in this package; tests swap in buffer-backed handlers.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "request handled", "status", status, "duration_ms", ms)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value
	// pairs. The HTTP server uses it to tag every line with its module name.
	With(args ...any) Logger
}
