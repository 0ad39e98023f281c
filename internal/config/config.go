package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Reference struct {
		TrendFile        string `yaml:"trend_file"`
		ProfileFile      string `yaml:"profile_file"`
		IntelFile        string `yaml:"intel_file"`
		ListingsWorkbook string `yaml:"listings_workbook"`
		ListingsAPI      struct {
			BaseURL string `yaml:"base_url"`
			APIKey  string `yaml:"api_key"`
		} `yaml:"listings_api"`
		CacheFile string `yaml:"cache_file"`
	} `yaml:"reference"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("LISTINGS_API_URL"); v != "" {
		cfg.Reference.ListingsAPI.BaseURL = v
	}
	if v := os.Getenv("LISTINGS_API_KEY"); v != "" {
		cfg.Reference.ListingsAPI.APIKey = v
	}
	if v := os.Getenv("LISTINGS_WORKBOOK"); v != "" {
		cfg.Reference.ListingsWorkbook = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Reference.TrendFile == "" {
		cfg.Reference.TrendFile = "data/buying_trends.yaml"
	}
	if cfg.Reference.ProfileFile == "" {
		cfg.Reference.ProfileFile = "data/performance_profiles.yaml"
	}
	if cfg.Reference.IntelFile == "" {
		cfg.Reference.IntelFile = "data/market_intel.yaml"
	}
	if cfg.Reference.CacheFile == "" {
		cfg.Reference.CacheFile = "data/refdata_cache.json"
	}
	if cfg.Schedule.RefreshCron == "" {
		// Daily at 06:00, before the first appraisals of the day.
		cfg.Schedule.RefreshCron = "0 0 6 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/appraiser.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Reference.ListingsWorkbook == "" && c.Reference.ListingsAPI.BaseURL == "" {
		return fmt.Errorf("reference.listings_workbook or reference.listings_api.base_url is required")
	}
	if c.Schedule.RefreshCron == "" {
		return fmt.Errorf("schedule.refresh_cron is required")
	}
	return nil
}
