// Package logger configures the application's structured logging.
//
// It uses zerolog: human-friendly console output in development,
// plain JSON everywhere else, with the level taken from config.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/slateworks/postparse/internal/config"
)

// New builds the application's root logger from config.
//
// All request-scoped loggers are derived from this one by the
// middleware layer, so fields added here appear on every log line.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "postparse").
		Str("env", cfg.Primary.Env).
		Logger()
}
