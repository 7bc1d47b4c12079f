// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration values read from environment variables.
type Config struct {
	AppPort        string        `mapstructure:"APP_PORT"`
	DatabaseDriver string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseDSN    string        `mapstructure:"DATABASE_DSN"`
	DatabaseName   string        `mapstructure:"DATABASE_NAME"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	TokenTTL       time.Duration `mapstructure:"TOKEN_TTL"`
	RabbitMQURL    string        `mapstructure:"RABBITMQ_URL"`
	AllowedOrigins string        `mapstructure:"ALLOWED_ORIGINS"`
	DefaultSchool  string        `mapstructure:"DEFAULT_SCHOOL"`
}

var keys = []string{
	"APP_PORT", "DATABASE_DRIVER", "DATABASE_DSN", "DATABASE_NAME", "JWT_SECRET",
	"TOKEN_TTL", "RABBITMQ_URL", "ALLOWED_ORIGINS", "DEFAULT_SCHOOL",
}

// Load reads the configuration from the environment, applying defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("DATABASE_NAME", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("DEFAULT_SCHOOL", "Unassigned")
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so bind them explicitly
	// for Unmarshal.
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values the service cannot start without.
// A missing database configuration is not an error here: the API answers
// every store-backed request with a 500 instead.
func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("APP_PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	switch strings.ToLower(c.DatabaseDriver) {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	return nil
}

// StoreConfigured reports whether both the connection string and the database
// identifier are present.
func (c *Config) StoreConfigured() bool {
	return c.DatabaseDSN != "" && c.DatabaseName != ""
}
