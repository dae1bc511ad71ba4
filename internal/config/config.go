package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider         string `yaml:"provider"` // "yahoo" or "polygon"; empty picks by api_key
		APIKey           string `yaml:"api_key"`
		Symbol           string `yaml:"symbol"`
		VolatilitySymbol string `yaml:"volatility_symbol"`
		Days             int    `yaml:"days"`
	} `yaml:"data_source"`
	Analysis struct {
		SwingOrder     int     `yaml:"swing_order"`
		SmoothWindow   int     `yaml:"smooth_window"`
		FibPairs       int     `yaml:"fib_pairs"`
		VolumeBins     int     `yaml:"volume_bins"`
		VolumeClusters int     `yaml:"volume_clusters"`
		PivotWindow    int     `yaml:"pivot_window"`
		MAWindows      []int   `yaml:"ma_windows"`
		NearbyPct      float64 `yaml:"nearby_pct"`
		GroupThreshold float64 `yaml:"group_threshold"`
		VolMAWindow    int     `yaml:"volatility_ma_window"`
	} `yaml:"analysis"`
	Output struct {
		Dir       string `yaml:"dir"`
		TopLevels int    `yaml:"top_levels"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
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
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.Days = days
		}
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "SPX500"
	}
	if cfg.DataSource.VolatilitySymbol == "" {
		cfg.DataSource.VolatilitySymbol = "VIX"
	}
	if cfg.DataSource.Days == 0 {
		cfg.DataSource.Days = 300
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "outputs"
	}
	if cfg.Output.TopLevels == 0 {
		cfg.Output.TopLevels = 8
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 30 22 * * 1-5" // after US close, weekdays
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks fields required for any run.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.DataSource.Days <= 0 {
		return fmt.Errorf("data_source.days must be positive")
	}
	if c.DataSource.Provider == "polygon" && c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required for the polygon provider")
	}
	if c.Analysis.GroupThreshold < 0 {
		return fmt.Errorf("analysis.group_threshold must not be negative")
	}
	if c.Analysis.NearbyPct < 0 {
		return fmt.Errorf("analysis.nearby_pct must not be negative")
	}
	return nil
}

// ValidateServe checks the extra fields serve mode needs.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required for serve mode")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required for serve mode")
	}
	return nil
}
