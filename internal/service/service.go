package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/caiogeraldes/wttr/internal/cache"
	"github.com/caiogeraldes/wttr/internal/client"
	"github.com/caiogeraldes/wttr/internal/models"
	"github.com/caiogeraldes/wttr/internal/observability"
)

// Extractor reduces a raw provider payload to normalized record JSON.
type Extractor interface {
	Extract(payload []byte) (string, error)
}

// FetchOptions controls a single lookup.
type FetchOptions struct {
	// NoCache skips the cache read. A fresh result is still written back.
	NoCache bool
}

// WeatherService decides between the cached record and a fresh fetch, and
// turns the result into a models.Weather.
type WeatherService struct {
	client       client.WeatherClient
	extractor    Extractor
	store        cache.Store
	strictWrites bool
	logger       *zap.Logger
}

// NewWeatherService creates a WeatherService. With strictWrites a failed
// cache write aborts the lookup; otherwise it is logged and the fetched
// record is still returned. logger may be nil.
func NewWeatherService(client client.WeatherClient, extractor Extractor, store cache.Store, strictWrites bool, logger *zap.Logger) *WeatherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherService{
		client:       client,
		extractor:    extractor,
		store:        store,
		strictWrites: strictWrites,
		logger:       logger,
	}
}

// GetWeather returns the current record, from cache when a fresh entry exists
// and opts.NoCache is false, otherwise from the provider. Every failure is
// fatal for the lookup; nothing is retried.
func (s *WeatherService) GetWeather(ctx context.Context, opts FetchOptions) (models.Weather, error) {
	start := time.Now()
	observability.WeatherQueriesTotal.Inc()

	var body string
	cached := false
	if opts.NoCache {
		observability.CacheLookupsTotal.WithLabelValues("bypass").Inc()
		s.logger.Debug("cache bypassed")
	} else {
		content, ok, err := s.store.ReadIfFresh(ctx)
		if err != nil {
			observability.CacheErrorsTotal.WithLabelValues("read").Inc()
			observability.PipelineErrorsTotal.WithLabelValues("cache", "io").Inc()
			return models.Weather{}, fmt.Errorf("read cache: %w", err)
		}
		if ok {
			observability.CacheLookupsTotal.WithLabelValues("hit").Inc()
			s.logger.Debug("cache hit")
			body = content
			cached = true
		} else {
			observability.CacheLookupsTotal.WithLabelValues("miss").Inc()
			s.logger.Debug("cache miss, fetching upstream")
		}
	}

	if !cached {
		fresh, err := s.fetchFresh(ctx)
		if err != nil {
			return models.Weather{}, err
		}
		body = fresh
	}

	weather, err := models.ParseWeather([]byte(body))
	if err != nil {
		observability.PipelineErrorsTotal.WithLabelValues("parse", "malformed").Inc()
		return models.Weather{}, fmt.Errorf("parse record: %w", err)
	}

	// Only records that parse are written to the cache.
	if !cached {
		if err := s.store.Write(ctx, body); err != nil {
			observability.CacheErrorsTotal.WithLabelValues("write").Inc()
			if s.strictWrites {
				observability.PipelineErrorsTotal.WithLabelValues("cache", "io").Inc()
				return models.Weather{}, fmt.Errorf("write cache: %w", err)
			}
			s.logger.Warn("cache write failed", zap.Error(err))
		}
	}

	observability.LastSuccessTimestamp.SetToCurrentTime()
	s.logger.Debug("weather served", zap.String("area", weather.Area), zap.Bool("cached", cached), zap.Duration("duration", time.Since(start)))
	return weather, nil
}

// Refresh fetches a fresh record regardless of cache state and stores it.
func (s *WeatherService) Refresh(ctx context.Context) (models.Weather, error) {
	return s.GetWeather(ctx, FetchOptions{NoCache: true})
}

// fetchFresh performs the single upstream call and extracts the record.
func (s *WeatherService) fetchFresh(ctx context.Context) (string, error) {
	fetchStart := time.Now()
	raw, err := s.client.FetchRaw(ctx)
	if err != nil {
		observability.PipelineErrorsTotal.WithLabelValues("fetch", string(client.CategorizeError(err))).Inc()
		return "", fmt.Errorf("fetch weather: %w", err)
	}
	s.logger.Debug("upstream fetch complete", zap.Int("bytes", len(raw)), zap.Duration("duration", time.Since(fetchStart)))

	extracted, err := s.extractor.Extract(raw)
	if err != nil {
		observability.PipelineErrorsTotal.WithLabelValues("extract", "extraction").Inc()
		return "", fmt.Errorf("extract record: %w", err)
	}
	return extracted, nil
}
