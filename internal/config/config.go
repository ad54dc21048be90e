package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rpggio/devtracker/internal/datastore"
	"gopkg.in/yaml.v3"
)

const appDir = "dev-tracker"

// Config defines tracker configuration.
type Config struct {
	DB    DBConfig    `yaml:"db"`
	Log   LogConfig   `yaml:"log"`
	Count CountConfig `yaml:"count"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type CountConfig struct {
	// Exclude lists directory names skipped when counting lines.
	Exclude []string `yaml:"exclude"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DB: DBConfig{
			Path: DefaultDBPath(),
		},
		Log: LogConfig{
			Level: "warn",
		},
		Count: CountConfig{
			Exclude: slices.Clone(datastore.DefaultExcludedDirs),
		},
	}
}

// DefaultDBPath returns <user config dir>/dev-tracker/dev-tracker.sqlite,
// falling back to the working directory when no config dir is known.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return appDir + ".sqlite"
	}
	return filepath.Join(dir, appDir, appDir+".sqlite")
}

// Load reads configuration from an optional YAML file and environment variables.
// path takes precedence over DEVTRACKER_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("DEVTRACKER_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("DEVTRACKER_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("DEVTRACKER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("DEVTRACKER_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.DB.Path == "" {
		return Config{}, fmt.Errorf("db.path must not be empty")
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
