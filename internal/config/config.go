package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the server
type Config struct {
	// Server configuration
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Media engine configuration
	StatusInterval  time.Duration `envconfig:"STATUS_INTERVAL" default:"500ms"`
	DefaultDuration time.Duration `envconfig:"DEFAULT_DURATION" default:"10m"`

	// Whether the platform granted notification permission.
	NotificationsPermitted bool `envconfig:"NOTIFICATIONS_PERMITTED" default:"true"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SlogLevel maps LogLevel to a slog.Level. validate guarantees it parses.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func validate(config *Config) error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if config.StatusInterval <= 0 {
		return fmt.Errorf("STATUS_INTERVAL must be greater than 0")
	}
	if config.DefaultDuration <= 0 {
		return fmt.Errorf("DEFAULT_DURATION must be greater than 0")
	}
	if _, err := parseLevel(config.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", s)
}
