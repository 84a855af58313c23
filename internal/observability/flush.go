package observability

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// FlushTelemetry writes the metrics textfile (when path is set) and syncs the
// logger. Call once before the process exits.
func FlushTelemetry(ctx context.Context, logger *zap.Logger, metricsPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if metricsPath != "" {
		if err := WriteTextfile(metricsPath); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if logger != nil {
		// stderr sync returns EINVAL on some terminals; not worth failing for.
		_ = logger.Sync()
	}
	return nil
}
