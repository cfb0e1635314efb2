package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional configuration stored in ~/.config/zsync/config.yml.
type FileConfig struct {
	ZenodoAPIKey    string  `yaml:"zenodo_api_key,omitempty"`
	ZenodoURL       string  `yaml:"zenodo_url,omitempty"`
	// ZenodoSandbox selects the sandbox API when ZenodoURL is empty.
	ZenodoSandbox   bool    `yaml:"zenodo_sandbox,omitempty"`
	PREreviewURL    string  `yaml:"prereview_url,omitempty"`
	ZenodoRateLimit float64 `yaml:"zenodo_rate_limit,omitempty"`
	Timeout         string  `yaml:"timeout,omitempty"` // Go duration, e.g. "30s"
}

const (
	// FileConfigDir is the directory name under XDG_CONFIG_HOME.
	FileConfigDir = "zsync"
	// FileConfigName is the config file name.
	FileConfigName = "config.yml"
)

// FilePath returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/zsync/config.yml.
func FilePath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, FileConfigDir, FileConfigName)
}

// LoadFile reads the config file at path.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		return &FileConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}
