// Package logger builds zap loggers from application configuration.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/config"
)

// New builds a sugared logger from environment configuration.
func New() (*zap.SugaredLogger, error) {
	return NewWithConfig(config.LoadLoggerConfig())
}

// NewWithConfig builds a sugared logger from the given settings.
func NewWithConfig(cfg config.LoggerConfig) (*zap.SugaredLogger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc.Encoding = "json"
	}

	out := cfg.Output
	if out != "stdout" && out != "stderr" {
		out = "stdout"
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	log, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
