package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/caiogeraldes/wttr/internal/cache"
	"github.com/caiogeraldes/wttr/internal/client"
	"github.com/caiogeraldes/wttr/internal/config"
	"github.com/caiogeraldes/wttr/internal/extract"
	"github.com/caiogeraldes/wttr/internal/models"
	"github.com/caiogeraldes/wttr/internal/observability"
	"github.com/caiogeraldes/wttr/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx := observability.WithInvocationID(context.Background(), observability.NewInvocationID())

	src := &lazyPipeline{}
	defer src.close(ctx)

	root := newRootCmd(src)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		src.logError(err)
		fmt.Fprintf(stderr, "wttr: %v\n", err)
		return 1
	}
	return 0
}

// lazyPipeline wires config, logger, cache and service on first use so that
// --help and --version never touch the filesystem or network.
type lazyPipeline struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *service.WeatherService
	warmer  *cache.Warmer
}

func (p *lazyPipeline) init(ctx context.Context) error {
	if p.service != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger = logger.With(zap.String("invocation_id", observability.InvocationID(ctx)))
	p.cfg, p.logger = cfg, logger

	if err := cfg.EnsureCacheDir(); err != nil {
		return err
	}
	store := cache.NewFileStore(cfg.CachePath, cache.RefreshWindow)

	weatherClient, err := client.NewWttrClient(cfg.ProviderURL, cfg.ProviderTimeout)
	if err != nil {
		return fmt.Errorf("weather client: %w", err)
	}
	extractor, err := extract.New()
	if err != nil {
		return fmt.Errorf("extractor: %w", err)
	}

	p.service = service.NewWeatherService(weatherClient, extractor, store, cfg.StrictWrites, logger)
	p.warmer = cache.NewWarmer(p.service, logger)
	logger.Debug("pipeline ready",
		zap.String("provider", cfg.ProviderURL),
		zap.String("cache", store.Path()),
		zap.Bool("strict_writes", cfg.StrictWrites))
	return nil
}

func (p *lazyPipeline) Weather(ctx context.Context, noCache bool) (models.Weather, error) {
	if err := p.init(ctx); err != nil {
		return models.Weather{}, err
	}
	return p.service.GetWeather(ctx, service.FetchOptions{NoCache: noCache})
}

func (p *lazyPipeline) Refresh(ctx context.Context) (models.Weather, error) {
	if err := p.init(ctx); err != nil {
		return models.Weather{}, err
	}
	return p.warmer.Warm(ctx)
}

func (p *lazyPipeline) logError(err error) {
	if p.logger != nil {
		p.logger.Debug("command failed", zap.Error(err))
	}
}

func (p *lazyPipeline) close(ctx context.Context) {
	if p.logger == nil {
		return
	}
	if err := observability.FlushTelemetry(ctx, p.logger, p.cfg.MetricsTextfile); err != nil {
		p.logger.Warn("telemetry flush", zap.Error(err))
	}
}
