// Package config loads ontology-mapper settings from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds all ontology-mapper settings.
// Environment variables always override YAML values.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Suggest  SuggestConfig  `yaml:"suggest"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

// AnalysisConfig tunes graph validation.
type AnalysisConfig struct {
	// DeepChainDepth is the chain depth above which a warning is reported.
	DeepChainDepth int `yaml:"deep_chain_depth" env:"DEEP_CHAIN_DEPTH" env-default:"4"`
}

// SuggestConfig tunes rule suggestion.
type SuggestConfig struct {
	// PreviewRows caps the sample rows read for suggestions.
	PreviewRows      int     `yaml:"preview_rows" env:"SUGGEST_PREVIEW_ROWS" env-default:"10"`
	MaxLookupEntries int     `yaml:"max_lookup_entries" env:"SUGGEST_MAX_LOOKUP_ENTRIES" env-default:"10"`
	MinConfidence    float64 `yaml:"min_confidence" env:"SUGGEST_MIN_CONFIDENCE" env-default:"0"`
}

// Load reads path with environment overrides. An empty or missing path falls
// back to environment variables and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if fileExists(path) {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("log.format must be %q or %q, got %q", FormatConsole, FormatJSON, c.Log.Format))
	}

	if c.Analysis.DeepChainDepth <= 0 {
		errs = append(errs, fmt.Errorf("analysis.deep_chain_depth must be positive, got %d", c.Analysis.DeepChainDepth))
	}

	if c.Suggest.PreviewRows <= 0 {
		errs = append(errs, fmt.Errorf("suggest.preview_rows must be positive, got %d", c.Suggest.PreviewRows))
	}

	if c.Suggest.MaxLookupEntries <= 0 {
		errs = append(errs, fmt.Errorf("suggest.max_lookup_entries must be positive, got %d", c.Suggest.MaxLookupEntries))
	}

	if c.Suggest.MinConfidence < 0 || c.Suggest.MinConfidence > 1 {
		errs = append(errs, fmt.Errorf("suggest.min_confidence must be within [0, 1], got %g", c.Suggest.MinConfidence))
	}

	return errors.Join(errs...)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
