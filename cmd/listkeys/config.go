package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/sudhanraj/scp-test/services/aws/paymentcrypto"
)

// Config holds the optional tuning knobs of the function. With nothing set,
// the function lists keys with the SDK default endpoint and six attempts per
// page.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL"                          envDefault:"info"`
	MaxAttempts int    `env:"PAYMENT_CRYPTOGRAPHY_MAX_ATTEMPTS"  envDefault:"6"`
	PageSize    int32  `env:"PAYMENT_CRYPTOGRAPHY_PAGE_SIZE"     envDefault:"0"`
	Endpoint    string `env:"PAYMENT_CRYPTOGRAPHY_ENDPOINT"`
}

// loadConfig parses the configuration from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxAttempts < 1 {
		return Config{}, fmt.Errorf("PAYMENT_CRYPTOGRAPHY_MAX_ATTEMPTS must be positive, got %d", cfg.MaxAttempts)
	}
	if cfg.PageSize < 0 {
		return Config{}, fmt.Errorf("PAYMENT_CRYPTOGRAPHY_PAGE_SIZE cannot be negative, got %d", cfg.PageSize)
	}
	return cfg, nil
}

// Level returns the slog level for LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ClientOptions converts the configuration into paymentcrypto client options.
func (c Config) ClientOptions(logger *slog.Logger) []paymentcrypto.Option {
	opts := []paymentcrypto.Option{
		paymentcrypto.WithLogger(logger),
		paymentcrypto.WithRetryMaxAttempts(c.MaxAttempts),
		paymentcrypto.WithPageSize(c.PageSize),
	}
	if c.Endpoint != "" {
		opts = append(opts, paymentcrypto.WithEndpoint(c.Endpoint))
	}
	return opts
}
