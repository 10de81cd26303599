package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Week    WeekConfig    `json:"week" yaml:"week"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// StorageConfig locates the ledger database and the snapshot archive
type StorageConfig struct {
	DBPath     string `json:"db_path" yaml:"db_path"`
	ArchiveDir string `json:"archive_dir" yaml:"archive_dir"`
}

// WeekConfig contains week initialization parameters
type WeekConfig struct {
	DefaultInitialCapital float64 `json:"default_initial_capital" yaml:"default_initial_capital"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // logrus level name, e.g. "info", "debug"
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	if c.Storage.ArchiveDir == "" {
		return fmt.Errorf("storage.archive_dir is required")
	}
	if c.Week.DefaultInitialCapital < 0 {
		return fmt.Errorf("week.default_initial_capital must not be negative")
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("unknown log.level: %s", c.Log.Level)
		}
	}
	return nil
}

// LogLevel returns the configured logrus level, defaulting to info.
func (c *Config) LogLevel() logrus.Level {
	if c.Log.Level == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath:     "./tradeweek.sqlite",
			ArchiveDir: "./Weekend-Saved",
		},
		Week: WeekConfig{
			DefaultInitialCapital: 100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
