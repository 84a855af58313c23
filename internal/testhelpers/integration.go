//go:build integration
// +build integration

package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caiogeraldes/wttr/internal/cache"
	"github.com/caiogeraldes/wttr/internal/client"
	"github.com/caiogeraldes/wttr/internal/extract"
	"github.com/caiogeraldes/wttr/internal/observability"
	"github.com/caiogeraldes/wttr/internal/service"
)

// IntegrationTestConfig holds configuration for integration tests.
type IntegrationTestConfig struct {
	ProviderURL string
	Timeout     time.Duration
}

// GetIntegrationConfig loads integration test configuration from environment.
// Skips test if WTTR_INTEGRATION is not set.
func GetIntegrationConfig(t *testing.T) IntegrationTestConfig {
	if os.Getenv("WTTR_INTEGRATION") == "" {
		t.Skip("WTTR_INTEGRATION not set, skipping integration test")
	}

	providerURL := os.Getenv("WTTR_URL")
	if providerURL == "" {
		providerURL = client.DefaultURL
	}

	return IntegrationTestConfig{
		ProviderURL: providerURL,
		Timeout:     10 * time.Second,
	}
}

// SetupIntegrationService builds the full pipeline against the live provider
// with a file cache in a temp dir. Returns the service and the cache store.
func SetupIntegrationService(t *testing.T, cfg IntegrationTestConfig) (*service.WeatherService, *cache.FileStore) {
	t.Helper()
	logger, err := observability.NewLogger("debug")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	t.Cleanup(func() { _ = logger.Sync() })

	weatherClient := SetupIntegrationClient(t, cfg)
	extractor, err := extract.New()
	if err != nil {
		t.Fatalf("extract.New() error = %v", err)
	}
	store := cache.NewFileStore(filepath.Join(t.TempDir(), "wttr.json"), cache.RefreshWindow)

	return service.NewWeatherService(weatherClient, extractor, store, true, logger), store
}

// SetupIntegrationClient creates a weather client for integration tests.
func SetupIntegrationClient(t *testing.T, cfg IntegrationTestConfig) client.WeatherClient {
	t.Helper()
	c, err := client.NewWttrClient(cfg.ProviderURL, cfg.Timeout)
	if err != nil {
		t.Fatalf("NewWttrClient() error = %v", err)
	}
	return c
}
