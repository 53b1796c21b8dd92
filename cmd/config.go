package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the ft command. Each one overrides the
// matching config file entry, and the -storage, -history and -currency flags
// override them in turn.
const (
	EnvConfig   = "FT_CONFIG"
	EnvStorage  = "FT_STORAGE"
	EnvHistory  = "FT_HISTORY"
	EnvCurrency = "FT_CURRENCY"
	EnvVerbose  = "FT_VERBOSE"
)

// Config holds the ft command configuration.
type Config struct {
	// Storage is the path to the snapshot file, the single source of truth.
	Storage string `yaml:"storage"`
	// History is the path to the history database. Empty disables journaling.
	History string `yaml:"history"`
	// Currency is the code stamped on newly typed amounts, e.g. "EUR".
	// Empty keeps amounts currencyless.
	Currency string `yaml:"currency"`
	// Seeds replaces the builtin starter funds on first run.
	Seeds []Seed `yaml:"seeds"`
}

// Seed describes one fund created on first run, when no snapshot exists yet.
// A seed with a percent takes that share of the profit distribution; a seed
// with tax set becomes the fund fed by the tax toggle.
type Seed struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Percent     float64 `yaml:"percent"`
	Tax         bool    `yaml:"tax"`
}

// ConfigPath returns the path of the config file: $FT_CONFIG when set,
// $HOME/.ft/config.yaml otherwise.
func ConfigPath() string {
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return filepath.Join(homeDir(), ".ft", "config.yaml")
}

// LoadConfig reads the config from a YAML file, then applies environment
// variable overrides, then fills the remaining blanks with defaults. A
// missing file is not an error, it simply means everything defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		cfg.History = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}

	// Defaults
	if cfg.Storage == "" {
		cfg.Storage = filepath.Join(homeDir(), ".ft", "snapshot.json")
	}

	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
