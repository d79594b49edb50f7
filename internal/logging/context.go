package logging

import (
	"context"
	"log/slog"

	"remaster/internal/services"
)

// WithComponent returns a child logger tagged with the component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// WithContext returns a child logger carrying the run and item identifiers
// present on the context, if any.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	if id, ok := services.RunIDFromContext(ctx); ok {
		logger = logger.With(String(FieldRunID, id))
	}
	if id, ok := services.ItemIDFromContext(ctx); ok {
		logger = logger.With(String(FieldItemID, id))
	}
	return logger
}
