// Package config holds env-driven application configuration.
package config

import "fmt"

// Config is the top-level application configuration.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	// GinMode selects the gin framework mode: debug, release or test.
	GinMode string
}

// Load reads the full configuration from environment variables.
func Load() Config {
	return Config{
		Server:  LoadServerConfig(),
		Logger:  LoadLoggerConfig(),
		GinMode: GetEnv("GIN_MODE", "release"),
	}
}

// Validate checks every configuration section.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q (want debug, release or test)", c.GinMode)
	}
	return nil
}
