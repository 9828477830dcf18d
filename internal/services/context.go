package services

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	viewModeKey  contextKey = "view_mode"
)

// WithRequestID annotates context with a correlation identifier for one CLI
// invocation or browse session.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(requestIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithViewMode annotates context with the collection being operated on.
func WithViewMode(ctx context.Context, mode string) context.Context {
	if mode == "" {
		return ctx
	}
	return context.WithValue(ctx, viewModeKey, mode)
}

// ViewModeFromContext extracts the view mode if present.
func ViewModeFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(viewModeKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
