package common

import "context"

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a copy of ctx carrying the request correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation ID stored in ctx, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// RequestLogger returns logger scoped to the correlation ID in ctx. A nil
// logger yields a silent one.
func RequestLogger(ctx context.Context, logger *Logger) *Logger {
	if logger == nil {
		logger = NewSilentLogger()
	}
	if id := CorrelationID(ctx); id != "" {
		return logger.WithCorrelationId(id)
	}
	return logger
}
