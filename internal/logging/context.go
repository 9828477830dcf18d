package logging

import (
	"context"
	"log/slog"

	"sourcehub/internal/services"
)

const (
	// FieldComponent names the package that wrote the line.
	FieldComponent = "component"
	// FieldViewMode is the collection a command works on.
	FieldViewMode = "view_mode"
	// FieldCorrelationID ties together the lines of one command run.
	FieldCorrelationID = "correlation_id"
)

// WithContext adds the view mode and correlation id carried by ctx to logger.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if ctx == nil {
		return logger
	}
	var args []any
	if mode, ok := services.ViewModeFromContext(ctx); ok {
		args = append(args, slog.String(FieldViewMode, mode))
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		args = append(args, slog.String(FieldCorrelationID, rid))
	}
	if len(args) == 0 {
		return logger
	}
	return logger.With(args...)
}
