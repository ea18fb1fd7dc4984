// Package logging defines the minimal structured-logging interface used
// across marketdesk. The CLI wires in the slog adapter; tests can supply
// anything that satisfies Logger.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "account registered", "kind", kind, "email", email)
//
// Passwords and digests must never be passed as values.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
