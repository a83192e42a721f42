// Package logger provides structured logging for TeachWhat.
package logger

import "context"

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	loggerKey contextKey = "teachwhat.logger"
	lineIDKey contextKey = "teachwhat.line_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithLineID tags the context with the ID of the input line being handled.
func WithLineID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, lineIDKey, id)
}

// LineIDFromContext extracts the line ID from context.
func LineIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(lineIDKey).(string); ok {
		return id
	}
	return ""
}

// L returns the context logger bound to ctx, so records carry the line ID.
func L(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
