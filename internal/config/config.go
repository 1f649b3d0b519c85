package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"StockDashboard/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Mock           bool   `yaml:"mock"`
	} `yaml:"provider"`
	Server struct {
		Addr           string   `yaml:"addr"`
		Mode           string   `yaml:"mode"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Dashboard struct {
		DefaultPalette string `yaml:"default_palette"`
		AnalysisRange  string `yaml:"analysis_range"`
	} `yaml:"dashboard"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file and a .env file, then applies environment
// variable overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

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
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("ALPHAVANTAGE_MOCK"); v != "" {
		if mock, err := strconv.ParseBool(v); err == nil {
			cfg.Provider.Mock = mock
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://www.alphavantage.co/query"
	}
	if cfg.Provider.TimeoutSeconds == 0 {
		cfg.Provider.TimeoutSeconds = 15
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Dashboard.DefaultPalette == "" {
		cfg.Dashboard.DefaultPalette = string(model.RedGreen)
	}
	if cfg.Dashboard.AnalysisRange == "" {
		cfg.Dashboard.AnalysisRange = string(model.Full)
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" && !c.Provider.Mock {
		return fmt.Errorf("provider.api_key is required (or set ALPHAVANTAGE_API_KEY)")
	}
	if c.Provider.TimeoutSeconds <= 0 {
		return fmt.Errorf("provider.timeout_seconds must be positive")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if _, err := model.ParsePalette(c.Dashboard.DefaultPalette, ""); err != nil {
		return fmt.Errorf("dashboard.default_palette: %w", err)
	}
	if _, err := model.ParseOutputSize(c.Dashboard.AnalysisRange, ""); err != nil {
		return fmt.Errorf("dashboard.analysis_range: %w", err)
	}
	return nil
}

// Palette returns the configured default palette.
func (c *Config) Palette() model.Palette {
	p, _ := model.ParsePalette(c.Dashboard.DefaultPalette, model.RedGreen)
	return p
}

// AnalysisRange returns the configured output size for the analysis page.
func (c *Config) AnalysisRange() model.OutputSize {
	s, _ := model.ParseOutputSize(c.Dashboard.AnalysisRange, model.Full)
	return s
}
