//go:build integration
// +build integration

package service_test

import (
	"context"
	"os"
	"testing"

	"github.com/caiogeraldes/wttr/internal/models"
	"github.com/caiogeraldes/wttr/internal/service"
	"github.com/caiogeraldes/wttr/internal/testhelpers"
)

func TestWeatherService_GetWeather_Integration(t *testing.T) {
	cfg := testhelpers.GetIntegrationConfig(t)
	svc, store := testhelpers.SetupIntegrationService(t, cfg)
	ctx := context.Background()

	fresh, err := svc.GetWeather(ctx, service.FetchOptions{})
	if err != nil {
		t.Fatalf("GetWeather() cold error = %v", err)
	}
	if fresh.Area == "" {
		t.Error("Area is empty")
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}

	cached, err := svc.GetWeather(ctx, service.FetchOptions{})
	if err != nil {
		t.Fatalf("GetWeather() warm error = %v", err)
	}
	if cached != fresh {
		t.Errorf("cached record = %+v, want %+v", cached, fresh)
	}
	if cached.String() == "" || cached.String() == (models.Weather{}).String() {
		t.Errorf("String() = %q, want arrow and symbol", cached.String())
	}
}
