// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package config

import (
	"time"

	"github.com/antoineeeHao/itinera/internal/budget"
	"github.com/antoineeeHao/itinera/internal/cache"
	"github.com/antoineeeHao/itinera/internal/pricing"
	"github.com/antoineeeHao/itinera/internal/recommend"
	"github.com/antoineeeHao/itinera/internal/upstream"
)

// Config holds all application configuration.
type Config struct {
	Pricing PricingConfig `koanf:"pricing"`
	Amadeus AmadeusConfig `koanf:"amadeus"`
	Scoring ScoringConfig `koanf:"scoring"`
	Budget  BudgetConfig  `koanf:"budget"`
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
}

// PricingConfig holds price cache and upstream call settings.
type PricingConfig struct {
	// CacheTTL is how long a live quote stays valid.
	// Default: 1h
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheSize is the maximum number of cached quotes.
	// Default: 1000
	CacheSize int `koanf:"cache_size"`

	// CachePath enables disk persistence of cached quotes in a badger
	// directory. Empty keeps the cache in memory only.
	CachePath string `koanf:"cache_path"`

	// CacheMaintenanceInterval is how often expired quotes are purged and
	// the disk store's value log is collected.
	// Default: 10m
	CacheMaintenanceInterval time.Duration `koanf:"cache_maintenance_interval"`

	// RequestsPerMinute is the upstream call budget over a rolling minute.
	// Zero blocks every upstream call.
	// Default: 50
	RequestsPerMinute int `koanf:"requests_per_minute"`

	// RetryAttempts is the maximum number of attempts per price.
	// Default: 3
	RetryAttempts int `koanf:"retry_attempts"`

	// RetryBaseDelay is the first backoff delay; it doubles per retry.
	// Default: 500ms
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"`

	// RetryMaxDelay caps the backoff delay.
	// Default: 8s
	RetryMaxDelay time.Duration `koanf:"retry_max_delay"`

	// AttemptTimeout bounds a single upstream attempt.
	// Default: 15s
	AttemptTimeout time.Duration `koanf:"attempt_timeout"`

	// BreakerFailures is the number of consecutive transient failures that
	// opens the circuit breaker.
	// Default: 5
	BreakerFailures uint32 `koanf:"breaker_failures"`

	// BreakerTimeout is how long the breaker stays open.
	// Default: 30s
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`

	// Origin is the departure airport.
	// Default: CDG
	Origin string `koanf:"origin"`

	// Currency of estimates.
	// Default: EUR
	Currency string `koanf:"currency"`
}

// AmadeusConfig holds flight-offers API credentials. Live pricing is
// enabled only when both the client ID and secret are set.
type AmadeusConfig struct {
	ClientID     string  `koanf:"client_id"`
	ClientSecret string  `koanf:"client_secret"`
	BaseURL      string  `koanf:"base_url"`
	MaxTPS       float64 `koanf:"max_tps"`
}

// ScoringConfig holds destination scorer settings.
type ScoringConfig struct {
	Weights recommend.Weights `koanf:"weights"`

	// NormalizeWeights rescales weights that do not sum to 1.0 instead of
	// failing startup.
	NormalizeWeights bool `koanf:"normalize_weights"`

	// Concurrency bounds parallel price resolutions while scoring.
	// Default: 4
	Concurrency int `koanf:"concurrency"`
}

// BudgetConfig holds budget optimizer settings.
type BudgetConfig struct {
	// Mode is greedy or exact.
	// Default: greedy
	Mode string `koanf:"mode"`

	HoursPerDay      float64 `koanf:"hours_per_day"`
	ActivitiesPerDay int     `koanf:"activities_per_day"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs requests per RateLimitWindow are allowed per client IP.
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// HasCredentials reports whether live pricing credentials are configured.
func (c *Config) HasCredentials() bool {
	return c.Amadeus.ClientID != "" && c.Amadeus.ClientSecret != ""
}

// ScorerConfig returns the destination scorer configuration.
func (c *Config) ScorerConfig() *recommend.Config {
	return &recommend.Config{
		Weights:          c.Scoring.Weights,
		NormalizeWeights: c.Scoring.NormalizeWeights,
		Origin:           c.Pricing.Origin,
		Concurrency:      c.Scoring.Concurrency,
	}
}

// OptimizerConfig returns the budget optimizer configuration.
func (c *Config) OptimizerConfig() *budget.Config {
	return &budget.Config{
		Mode:             budget.Mode(c.Budget.Mode),
		HoursPerDay:      c.Budget.HoursPerDay,
		ActivitiesPerDay: c.Budget.ActivitiesPerDay,
		Origin:           c.Pricing.Origin,
	}
}

// RetryPolicy returns the upstream retry policy.
func (c *Config) RetryPolicy() upstream.Policy {
	return upstream.Policy{
		Attempts:       c.Pricing.RetryAttempts,
		BaseDelay:      c.Pricing.RetryBaseDelay,
		MaxDelay:       c.Pricing.RetryMaxDelay,
		AttemptTimeout: c.Pricing.AttemptTimeout,
	}
}

// BreakerConfig returns the upstream circuit breaker configuration.
func (c *Config) BreakerConfig() upstream.BreakerConfig {
	return upstream.BreakerConfig{
		Name:                "amadeus",
		ConsecutiveFailures: c.Pricing.BreakerFailures,
		OpenTimeout:         c.Pricing.BreakerTimeout,
	}
}

// AmadeusClientConfig returns the flight-offers client configuration.
func (c *Config) AmadeusClientConfig() upstream.AmadeusConfig {
	return upstream.AmadeusConfig{
		ClientID:     c.Amadeus.ClientID,
		ClientSecret: c.Amadeus.ClientSecret,
		BaseURL:      c.Amadeus.BaseURL,
		MaxTPS:       c.Amadeus.MaxTPS,
	}
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Pricing: PricingConfig{
			CacheTTL:                 cache.DefaultTTL,
			CacheSize:                cache.DefaultCapacity,
			CachePath:                "",
			CacheMaintenanceInterval: 10 * time.Minute,
			RequestsPerMinute:        upstream.DefaultRequestsPerMinute,
			RetryAttempts:            3,
			RetryBaseDelay:           500 * time.Millisecond,
			RetryMaxDelay:            8 * time.Second,
			AttemptTimeout:           15 * time.Second,
			BreakerFailures:          5,
			BreakerTimeout:           30 * time.Second,
			Origin:                   "CDG",
			Currency:                 pricing.DefaultCurrency,
		},
		Amadeus: AmadeusConfig{
			BaseURL: upstream.DefaultAmadeusBaseURL,
			MaxTPS:  10,
		},
		Scoring: ScoringConfig{
			Weights:     recommend.DefaultWeights(),
			Concurrency: 4,
		},
		Budget: BudgetConfig{
			Mode:             string(budget.ModeGreedy),
			HoursPerDay:      budget.DefaultHoursPerDay,
			ActivitiesPerDay: budget.DefaultActivitiesPerDay,
		},
		Server: ServerConfig{
			Port:              8080,
			Host:              "0.0.0.0",
			Timeout:           30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
