// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package config

import (
	"net/url"
	"strings"

	"github.com/antoineeeHao/itinera/internal/models"
)

// Validate checks that configuration values are usable. It returns a
// *models.ConfigurationError naming the first invalid option.
func (c *Config) Validate() error {
	if err := c.validatePricing(); err != nil {
		return err
	}
	if err := c.validateAmadeus(); err != nil {
		return err
	}
	if err := c.ScorerConfig().Validate(); err != nil {
		return err
	}
	if err := c.OptimizerConfig().Validate(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePricing() error {
	p := &c.Pricing
	switch {
	case p.CacheTTL <= 0:
		return models.NewConfigurationError("pricing.cache_ttl", "must be positive, got %v", p.CacheTTL)
	case p.CacheSize < 1:
		return models.NewConfigurationError("pricing.cache_size", "must be at least 1, got %d", p.CacheSize)
	case p.CacheMaintenanceInterval <= 0:
		return models.NewConfigurationError("pricing.cache_maintenance_interval", "must be positive, got %v", p.CacheMaintenanceInterval)
	case p.RequestsPerMinute < 0:
		return models.NewConfigurationError("pricing.requests_per_minute", "must be non-negative, got %d", p.RequestsPerMinute)
	case p.RetryAttempts < 1:
		return models.NewConfigurationError("pricing.retry_attempts", "must be at least 1, got %d", p.RetryAttempts)
	case p.RetryBaseDelay <= 0:
		return models.NewConfigurationError("pricing.retry_base_delay", "must be positive, got %v", p.RetryBaseDelay)
	case p.RetryMaxDelay < p.RetryBaseDelay:
		return models.NewConfigurationError("pricing.retry_max_delay", "must be at least retry_base_delay, got %v", p.RetryMaxDelay)
	case p.AttemptTimeout <= 0:
		return models.NewConfigurationError("pricing.attempt_timeout", "must be positive, got %v", p.AttemptTimeout)
	case p.BreakerFailures < 1:
		return models.NewConfigurationError("pricing.breaker_failures", "must be at least 1, got %d", p.BreakerFailures)
	case p.BreakerTimeout <= 0:
		return models.NewConfigurationError("pricing.breaker_timeout", "must be positive, got %v", p.BreakerTimeout)
	case len(p.Origin) != 3 || strings.ToUpper(p.Origin) != p.Origin:
		return models.NewConfigurationError("pricing.origin", "must be a three-letter IATA code, got %q", p.Origin)
	case len(p.Currency) != 3:
		return models.NewConfigurationError("pricing.currency", "must be a three-letter ISO code, got %q", p.Currency)
	}
	return nil
}

func (c *Config) validateAmadeus() error {
	a := &c.Amadeus
	if (a.ClientID == "") != (a.ClientSecret == "") {
		return models.NewConfigurationError("amadeus", "client_id and client_secret must be set together")
	}
	if a.MaxTPS <= 0 {
		return models.NewConfigurationError("amadeus.max_tps", "must be positive, got %v", a.MaxTPS)
	}
	u, err := url.Parse(a.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return models.NewConfigurationError("amadeus.base_url", "must be an http(s) URL, got %q", a.BaseURL)
	}
	return nil
}

func (c *Config) validateServer() error {
	s := &c.Server
	switch {
	case s.Port < 1 || s.Port > 65535:
		return models.NewConfigurationError("server.port", "must be between 1 and 65535, got %d", s.Port)
	case s.Timeout <= 0:
		return models.NewConfigurationError("server.timeout", "must be positive, got %v", s.Timeout)
	case s.ShutdownTimeout <= 0:
		return models.NewConfigurationError("server.shutdown_timeout", "must be positive, got %v", s.ShutdownTimeout)
	case !s.RateLimitDisabled && s.RateLimitReqs < 1:
		return models.NewConfigurationError("server.rate_limit_reqs", "must be at least 1, got %d", s.RateLimitReqs)
	case !s.RateLimitDisabled && s.RateLimitWindow <= 0:
		return models.NewConfigurationError("server.rate_limit_window", "must be positive, got %v", s.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return models.NewConfigurationError("logging.level", "must be trace, debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return models.NewConfigurationError("logging.format", "must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
