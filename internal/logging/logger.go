// Package logging defines the structured-logging interface used by the
// recruitkit tools and a log/slog backed implementation.
package logging

import "context"

// Logger writes leveled, structured records. args are alternating keys and
// values:
//
//	log.Info(ctx, "token inserted", "user_id", id)
//
// Never pass secrets (tokens, passwords) as values.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
