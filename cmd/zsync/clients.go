package main

import (
	"fmt"

	"github.com/prereview/zsync/internal/config"
	"github.com/prereview/zsync/internal/httpclient"
	"github.com/prereview/zsync/internal/prereview"
	"github.com/prereview/zsync/internal/zenodo"
)

// loadConfig reads configuration, requiring the Zenodo API key when needZenodo is set.
func loadConfig(needZenodo bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	if needZenodo {
		if err := cfg.RequireAPIKey(); err != nil {
			return nil, fmt.Errorf("unable to read configuration: %w", err)
		}
	}
	return cfg, nil
}

func newPREreviewClient(cfg *config.Config) (*prereview.Client, error) {
	return prereview.NewClient(cfg.PREreviewURL, logger,
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithUserAgent("zsync/"+Version),
	)
}

func newZenodoClient(cfg *config.Config) (*zenodo.Client, error) {
	return zenodo.NewClient(cfg.ZenodoURL, cfg.ZenodoAPIKey, logger,
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithRateLimit(cfg.ZenodoRateLimit),
		httpclient.WithUserAgent("zsync/"+Version),
	)
}
