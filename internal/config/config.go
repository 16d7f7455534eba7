package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

// SourceConfig declares a watched document source with its pre-extracted
// entity lists. Exactly one of URL or Path must be set.
type SourceConfig struct {
	Name     string         `yaml:"name" validate:"required"`
	URL      string         `yaml:"url" validate:"omitempty,url"`
	Path     string         `yaml:"path"`
	Entities model.Entities `yaml:"entities"`
}

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
	Watchlist struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"watchlist"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Webhook struct {
		URL string `yaml:"url" validate:"omitempty,url"`
	} `yaml:"webhook"`
	Schedule struct {
		SweepCron string `yaml:"sweep_cron"`
	} `yaml:"schedule"`
	Fetch struct {
		TimeoutSeconds    int    `yaml:"timeout_seconds" validate:"min=0"`
		RequestsPerMinute int    `yaml:"requests_per_minute" validate:"min=0"`
		UserAgent         string `yaml:"user_agent"`
	} `yaml:"fetch"`
	Proxy   string         `yaml:"proxy"`
	Sources []SourceConfig `yaml:"sources" validate:"dive"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("RISKRADAR_WEBHOOK_URL"); v != "" {
		cfg.Webhook.URL = v
	}
	if v := os.Getenv("RISKRADAR_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_SWEEP"); v != "" {
		cfg.Schedule.SweepCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Watchlist.StateFile == "" {
		cfg.Watchlist.StateFile = "data/watchlist.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/risk_radar.db"
	}
	if cfg.Schedule.SweepCron == "" {
		cfg.Schedule.SweepCron = "0 0 7 * * 1-5"
	}
	if cfg.Fetch.TimeoutSeconds == 0 {
		cfg.Fetch.TimeoutSeconds = 30
	}
	if cfg.Fetch.RequestsPerMinute == 0 {
		cfg.Fetch.RequestsPerMinute = 12
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}

	return cfg, nil
}

// Validate checks struct tags and cross-field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	for _, src := range c.Sources {
		if src.URL == "" && src.Path == "" {
			return fmt.Errorf("source %q needs a url or a path", src.Name)
		}
		if src.URL != "" && src.Path != "" {
			return fmt.Errorf("source %q has both a url and a path", src.Name)
		}
	}
	return nil
}
