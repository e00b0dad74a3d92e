package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/briareus/pkg/utils/logging"
)

// Close safely closes an io.Closer and logs any errors.
// It handles nil closers gracefully.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}

// Remove safely removes a file and logs any errors. Used to clean up
// temporary artifacts after a failed publish.
func Remove(ctx context.Context, remove func() error) {
	if remove == nil {
		return
	}
	if err := remove(); err != nil {
		logging.From(ctx).Error("Failed to remove", slog.Any("error", err))
	}
}
