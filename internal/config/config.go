package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProviderURL     = "https://wttr.in/?format=j1"
	DefaultProviderTimeout = 10 * time.Second
	DefaultLogLevel        = "warn"

	cacheDirName  = ".cache"
	cacheFileName = "wttr.json"
)

// ErrHomeDirUnavailable is returned when the user's home directory cannot be
// determined. The cache location depends on it.
var ErrHomeDirUnavailable = errors.New("home directory unavailable")

// Config holds CLI configuration loaded from an optional YAML file and env.
type Config struct {
	ProviderURL     string
	ProviderTimeout time.Duration

	StrictWrites bool

	LogLevel        string
	MetricsTextfile string

	HomeDir   string
	CachePath string
}

type fileConfig struct {
	Provider struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"provider"`

	Cache struct {
		StrictWrites *bool `yaml:"strict_writes"`
	} `yaml:"cache"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Metrics struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`
}

// Load resolves the home directory, reads <home>/.config/wttr/config.yaml (or
// WTTR_CONFIG) when present and applies env overrides WTTR_URL, LOG_LEVEL and
// WTTR_METRICS_TEXTFILE.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil, fmt.Errorf("%w: %v", ErrHomeDirUnavailable, err)
	}

	configPath := os.Getenv("WTTR_CONFIG")
	if configPath == "" {
		configPath = filepath.Join(home, ".config", "wttr", "config.yaml")
	}

	var fc fileConfig
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{
		HomeDir:   home,
		CachePath: filepath.Join(home, cacheDirName, cacheFileName),
	}

	cfg.ProviderURL = strings.TrimSpace(os.Getenv("WTTR_URL"))
	if cfg.ProviderURL == "" {
		cfg.ProviderURL = strings.TrimSpace(fc.Provider.URL)
	}
	if cfg.ProviderURL == "" {
		cfg.ProviderURL = DefaultProviderURL
	}
	cfg.ProviderTimeout = parseDurationOrZero(fc.Provider.Timeout, DefaultProviderTimeout)

	if fc.Cache.StrictWrites != nil {
		cfg.StrictWrites = *fc.Cache.StrictWrites
	}

	cfg.LogLevel = strings.TrimSpace(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if cfg.LogLevel == "" {
		cfg.LogLevel = strings.TrimSpace(strings.ToLower(fc.Log.Level))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	cfg.MetricsTextfile = strings.TrimSpace(os.Getenv("WTTR_METRICS_TEXTFILE"))
	if cfg.MetricsTextfile == "" {
		cfg.MetricsTextfile = strings.TrimSpace(fc.Metrics.Textfile)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnsureCacheDir creates the directory holding CachePath. The cache store
// itself never creates directories.
func (c *Config) EnsureCacheDir() error {
	dir := filepath.Dir(c.CachePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory %s: %w", dir, err)
	}
	return nil
}

// parseDurationOrZero parses a duration string, returning defaultVal on empty string or parse error.
// Returns zero or negative durations as-is (caller should handle fallback).
func parseDurationOrZero(s string, defaultVal time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultVal
	}
	return d
}

// validate rejects values Load could not repair with a default.
func validate(cfg *Config) error {
	if cfg.ProviderTimeout <= 0 {
		return fmt.Errorf("provider.timeout must be positive, got %v", cfg.ProviderTimeout)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
		// valid
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.LogLevel)
	}
	return nil
}
