package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/caiogeraldes/wttr/internal/models"
)

// Refresher is implemented by the service layer to fetch a fresh record and
// store it. Used by Warmer to avoid a circular dependency on the service package.
type Refresher interface {
	Refresh(ctx context.Context) (models.Weather, error)
}

// Warmer refreshes the cache ahead of time, e.g. from a cron job, so that
// interactive invocations hit a fresh entry.
type Warmer struct {
	refresher Refresher
	logger    *zap.Logger
}

// NewWarmer creates a Warmer that uses the given refresher and logger.
func NewWarmer(refresher Refresher, logger *zap.Logger) *Warmer {
	return &Warmer{refresher: refresher, logger: logger}
}

// Warm performs one fresh fetch and returns the record that was cached.
func (w *Warmer) Warm(ctx context.Context) (models.Weather, error) {
	start := time.Now()
	if w.logger != nil {
		w.logger.Info("warming cache")
	}
	weather, err := w.refresher.Refresh(ctx)
	if err != nil {
		return models.Weather{}, fmt.Errorf("cache warming: %w", err)
	}
	if w.logger != nil {
		w.logger.Info("cache warming complete", zap.String("area", weather.Area), zap.Duration("duration", time.Since(start)))
	}
	return weather, nil
}
