// Package config holds database connection configuration.
package config

import (
	"fmt"
	"strings"

	appconfig "github.com/DragonCaesar2004/Code-review-assigner/internal/config"
	"github.com/DragonCaesar2004/Code-review-assigner/pkg/retry"
)

// Config describes a PostgreSQL connection.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// Load reads the database configuration from environment variables.
func Load() Config {
	return Config{
		Host:     appconfig.GetEnv("DB_HOST", "localhost"),
		User:     appconfig.GetEnv("DB_USER", "postgres"),
		Password: appconfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   appconfig.GetEnv("DB_NAME", "review_assigner"),
		Port:     appconfig.GetEnv("DB_PORT", "5432"),
		SSLMode:  appconfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: appconfig.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// DSN builds the gorm/pgx connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode, c.TimeZone)
}

// SanitizeError strips the password from connection error messages.
func (c Config) SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if c.Password != "" {
		msg = strings.ReplaceAll(msg, c.Password, "***")
	}
	return fmt.Errorf("database connection failed: %s", msg)
}

// LoadRetry reads connection retry tuning from environment variables.
func LoadRetry() retry.Config {
	cfg := retry.PostgresConfig()
	if d := appconfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay); d > 0 {
		cfg.InitialDelay = d
	}
	if d := appconfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay); d > 0 {
		cfg.MaxDelay = d
	}
	return cfg
}
