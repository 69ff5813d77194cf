// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"lingopress/internal/models"
)

// Infinity is accepted for PAGINATION_MAX_PAGE_NUMBER and means "no upper
// bound".
const Infinity = "Infinity"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel string

	// Per-client throttling of the catalog endpoints; zero requests disables it
	RateLimitRequests int
	RateLimitWindow   time.Duration
	TrustProxy        bool

	// Locales
	Locales       []string
	DefaultLocale string

	// Pagination bounds
	MinPageNumber         int
	MaxPageNumber         int
	MinPageSize           int
	MaxPageSize           int
	PublicDefaultPageSize int

	// Corpus and bodies
	DataDir         string
	ContentDir      string
	SearchThreshold float64
	SeedDevCorpus   bool

	// Valkey (Redis-compatible cache); an explicitly empty host disables it
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// S3-compatible object storage; empty endpoint disables it
	S3Endpoint      string
	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3DataPrefix    string
	S3ContentPrefix string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value is
// malformed or inconsistent.
func Load() (*Config, error) {
	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: strings.ToLower(envOrDefault("LOG_LEVEL", "info")),

		Locales:       splitList(envOrDefault("LOCALES", "en,es")),
		DefaultLocale: envOrDefault("DEFAULT_LOCALE", "en"),

		DataDir:    envOrDefault("DATA_DIR", "./data"),
		ContentDir: envOrDefault("CONTENT_DIR", "./content"),

		ValkeyHost:     lookupOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3Region:        envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3DataPrefix:    envOrDefault("S3_DATA_PREFIX", "data"),
		S3ContentPrefix: envOrDefault("S3_CONTENT_PREFIX", "content"),
	}

	var errs []error
	intVar := func(dst *int, key, fallback string) {
		v, err := parseInt(key, envOrDefault(key, fallback))
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = v
	}
	intVar(&cfg.MinPageNumber, "PAGINATION_MIN_PAGE_NUMBER", "1")
	intVar(&cfg.MaxPageNumber, "PAGINATION_MAX_PAGE_NUMBER", Infinity)
	intVar(&cfg.MinPageSize, "PAGINATION_MIN_PAGE_SIZE", "12")
	intVar(&cfg.MaxPageSize, "PAGINATION_MAX_PAGE_SIZE", "60")
	intVar(&cfg.PublicDefaultPageSize, "PUBLIC_DEFAULT_PAGE_SIZE", "36")
	intVar(&cfg.RateLimitRequests, "RATE_LIMIT_REQUESTS", "0")

	window, err := time.ParseDuration(envOrDefault("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW: %w", err))
	}
	cfg.RateLimitWindow = window

	trust, err := strconv.ParseBool(envOrDefault("TRUST_PROXY", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("TRUST_PROXY: %w", err))
	}
	cfg.TrustProxy = trust

	threshold, err := strconv.ParseFloat(envOrDefault("SEARCH_THRESHOLD", "0.4"), 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("SEARCH_THRESHOLD: %w", err))
	}
	cfg.SearchThreshold = threshold

	seed, err := strconv.ParseBool(envOrDefault("SEED_DEV_CORPUS", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SEED_DEV_CORPUS: %w", err))
	}
	cfg.SeedDevCorpus = seed

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if err := c.LocaleSet().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("LOCALES/DEFAULT_LOCALE: %w", err))
	}
	if c.MinPageNumber < 1 {
		errs = append(errs, fmt.Errorf("PAGINATION_MIN_PAGE_NUMBER must be at least 1, got %d", c.MinPageNumber))
	}
	if c.MaxPageNumber < c.MinPageNumber {
		errs = append(errs, fmt.Errorf("PAGINATION_MAX_PAGE_NUMBER must be at least %d, got %d", c.MinPageNumber, c.MaxPageNumber))
	}
	if c.MinPageSize < 1 {
		errs = append(errs, fmt.Errorf("PAGINATION_MIN_PAGE_SIZE must be at least 1, got %d", c.MinPageSize))
	}
	if c.MaxPageSize < c.MinPageSize {
		errs = append(errs, fmt.Errorf("PAGINATION_MAX_PAGE_SIZE must be at least %d, got %d", c.MinPageSize, c.MaxPageSize))
	}
	if c.PublicDefaultPageSize < 1 {
		errs = append(errs, fmt.Errorf("PUBLIC_DEFAULT_PAGE_SIZE must be at least 1, got %d", c.PublicDefaultPageSize))
	}
	if c.RateLimitRequests < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative, got %d", c.RateLimitRequests))
	}
	if c.RateLimitRequests > 0 && c.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.RateLimitWindow))
	}
	if c.SearchThreshold < 0 || c.SearchThreshold > 1 {
		errs = append(errs, fmt.Errorf("SEARCH_THRESHOLD must be within [0, 1], got %v", c.SearchThreshold))
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel))
	}
	if c.S3Enabled() && c.S3Bucket == "" {
		errs = append(errs, errors.New("S3_BUCKET must be set when S3_ENDPOINT is"))
	}

	if c.Env == "production" && !c.S3Enabled() {
		if _, err := os.Stat(c.DataDir); err != nil {
			errs = append(errs, fmt.Errorf("DATA_DIR %q must exist in production when S3 is not configured", c.DataDir))
		}
	}

	return errors.Join(errs...)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// LocaleSet returns the configured locales as a domain value.
func (c *Config) LocaleSet() models.Locales {
	supported := make([]models.Locale, len(c.Locales))
	for i, l := range c.Locales {
		supported[i] = models.Locale(l)
	}
	return models.Locales{Supported: supported, Default: models.Locale(c.DefaultLocale)}
}

// Bounds returns the configured pagination bounds.
func (c *Config) Bounds() models.PaginationBounds {
	return models.PaginationBounds{
		MinPageNumber: c.MinPageNumber,
		MaxPageNumber: c.MaxPageNumber,
		MinPageSize:   c.MinPageSize,
		MaxPageSize:   c.MaxPageSize,
	}
}

// S3Enabled reports whether corpus data and bodies come from S3.
func (c *Config) S3Enabled() bool {
	return c.S3Endpoint != ""
}

// RateLimitEnabled reports whether catalog requests are throttled.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRequests > 0
}

// ValkeyEnabled reports whether the shared body cache is configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns LOG_LEVEL as a slog level.
func (c *Config) SlogLevel() slog.Level {
	return logLevels[c.LogLevel]
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// lookupOrDefault is envOrDefault for settings where an explicitly empty
// value is meaningful.
func lookupOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

// parseInt parses an integer setting. Infinity maps to math.MaxInt32.
func parseInt(key, raw string) (int, error) {
	if raw == Infinity {
		return math.MaxInt32, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
