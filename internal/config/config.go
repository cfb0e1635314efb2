// Package config assembles zsync's settings from the environment, an
// optional .env file and an optional YAML config file.
//
// Environment variables win over the config file. The Zenodo API key is the
// only required setting, checked with RequireAPIKey.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/prereview/zsync/internal/httpclient"
	"github.com/prereview/zsync/internal/prereview"
	"github.com/prereview/zsync/internal/zenodo"
)

// Environment variables.
const (
	EnvZenodoAPIKey    = "ZENODO_API_KEY"
	EnvZenodoURL       = "ZENODO_URL"
	EnvPREreviewURL    = "PREREVIEW_URL"
	EnvZenodoRateLimit = "ZENODO_RATE_LIMIT"
	EnvTimeout         = "ZSYNC_TIMEOUT"
	EnvZenodoSandbox   = "ZENODO_SANDBOX"
)

// ErrMissingAPIKey is returned when no Zenodo API key is configured.
var ErrMissingAPIKey = errors.New("ZENODO_API_KEY is not set")

// Config holds the settings for one run.
type Config struct {
	ZenodoAPIKey    string
	ZenodoURL       string
	PREreviewURL    string
	ZenodoRateLimit float64       // requests per second, 0 for unlimited
	Timeout         time.Duration // 0 for no timeout
}

// Load reads .env from the working directory (if present), then the config
// file at FilePath, then the environment.
func Load() (*Config, error) {
	// Load .env file if present (for ZENODO_API_KEY)
	_ = godotenv.Load()

	file, err := LoadFile(FilePath())
	if err != nil {
		return nil, err
	}
	return FromFile(file)
}

// FromFile overlays the environment on a config file.
func FromFile(file *FileConfig) (*Config, error) {
	cfg := &Config{
		ZenodoAPIKey:    getEnv(EnvZenodoAPIKey, file.ZenodoAPIKey),
		ZenodoURL:       getEnv(EnvZenodoURL, file.ZenodoURL),
		PREreviewURL:    getEnv(EnvPREreviewURL, file.PREreviewURL),
		ZenodoRateLimit: zenodo.RateLimit,
		Timeout:         httpclient.DefaultTimeout,
	}
	if cfg.ZenodoURL == "" {
		sandbox := file.ZenodoSandbox
		if v := os.Getenv(EnvZenodoSandbox); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", EnvZenodoSandbox, err)
			}
			sandbox = b
		}
		cfg.ZenodoURL = zenodo.BaseURL
		if sandbox {
			cfg.ZenodoURL = zenodo.SandboxBaseURL
		}
	}
	if cfg.PREreviewURL == "" {
		cfg.PREreviewURL = prereview.BaseURL
	}
	if file.ZenodoRateLimit != 0 {
		cfg.ZenodoRateLimit = file.ZenodoRateLimit
	}
	if v := os.Getenv(EnvZenodoRateLimit); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvZenodoRateLimit, err)
		}
		cfg.ZenodoRateLimit = rps
	}
	if timeout := getEnv(EnvTimeout, file.Timeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// RequireAPIKey returns ErrMissingAPIKey when no Zenodo API key is set.
// Commands that only read from PREreview skip this check.
func (c *Config) RequireAPIKey() error {
	if c.ZenodoAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// getEnv returns the environment variable if set, otherwise the fallback.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
