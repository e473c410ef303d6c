package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the bind host; empty means all interfaces.
	Host string
	// Port is the bind port, with or without a leading colon.
	Port string
	// ReadTimeout bounds reading of the whole request.
	ReadTimeout time.Duration
	// WriteTimeout bounds writing of the response.
	WriteTimeout time.Duration
	// IdleTimeout bounds keep-alive waits between requests.
	IdleTimeout time.Duration
}

// LoadServerConfig reads server settings from environment variables.
func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Host:         GetEnv("SERVER_HOST", ""),
		Port:         GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:  GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
	}
}

// Address returns the listen address in host:port form.
func (c ServerConfig) Address() string {
	if c.Host == "" {
		if strings.HasPrefix(c.Port, ":") {
			return c.Port
		}
		return ":" + c.Port
	}
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate checks server settings.
func (c ServerConfig) Validate() error {
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("SERVER_IDLE_TIMEOUT must be positive")
	}
	return nil
}
