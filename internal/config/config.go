// Package config loads runtime settings for the bestiary CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/zeusync/bestiary/internal/core/observability/log"
)

const EnvPrefix = "BESTIARY"

// Config holds all configuration options.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	// Catalog is a YAML or JSON catalog file. Empty means the built-in one.
	Catalog string `mapstructure:"catalog"`
}

func Defaults() Config {
	return Config{
		LogLevel: "info",
	}
}

// Load reads settings from, in increasing precedence: defaults, the config
// file at path (if any), BESTIARY_* environment variables and flags already
// bound to v.
func Load(v *viper.Viper, path string) (Config, error) {
	defaults := Defaults()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("catalog", defaults.Catalog)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level is the parsed LogLevel; invalid values fall back to info.
func (c Config) Level() log.Level {
	l, _ := log.ParseLevel(c.LogLevel)
	return l
}
