// Package config loads runtime settings from an optional file and
// CHESSMOVES_* environment variables.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "CHESSMOVES"

// Config holds the settings shared by the command-line tools.
type Config struct {
	// DBPath is the BadgerDB directory. Empty means the platform default.
	DBPath   string
	LogLevel zerolog.Level
	Workers  int
	Cache    bool
}

// Load reads settings from path (if non-empty) and the environment.
// Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("cache", true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level, err := zerolog.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}

	cfg := &Config{
		DBPath:   v.GetString("db_path"),
		LogLevel: level,
		Workers:  v.GetInt("workers"),
		Cache:    v.GetBool("cache"),
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	return cfg, nil
}
