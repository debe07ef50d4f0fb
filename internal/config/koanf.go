// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/itinera/config.yaml",
	"/etc/itinera/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load loads configuration with layered sources:
//  1. Defaults: built-in values
//  2. Config file: optional YAML file
//  3. Environment variables: override any mapped setting
//
// The result is validated; invalid values return a
// *models.ConfigurationError.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// AMADEUS_CLIENT_ID -> amadeus.client_id
	// PRICE_CACHE_TTL -> pricing.cache_ttl
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first config file found, or "" for none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated environment values.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to config paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Pricing
	"price_cache_ttl":                  "pricing.cache_ttl",
	"price_cache_size":                 "pricing.cache_size",
	"price_cache_path":                 "pricing.cache_path",
	"price_cache_maintenance_interval": "pricing.cache_maintenance_interval",
	"requests_per_minute":              "pricing.requests_per_minute",
	"retry_attempts":                   "pricing.retry_attempts",
	"retry_base_delay":                 "pricing.retry_base_delay",
	"retry_max_delay":                  "pricing.retry_max_delay",
	"attempt_timeout":                  "pricing.attempt_timeout",
	"breaker_failures":                 "pricing.breaker_failures",
	"breaker_timeout":                  "pricing.breaker_timeout",
	"origin_airport":                   "pricing.origin",
	"price_currency":                   "pricing.currency",

	// Amadeus
	"amadeus_client_id":     "amadeus.client_id",
	"amadeus_client_secret": "amadeus.client_secret",
	"amadeus_base_url":      "amadeus.base_url",
	"amadeus_max_tps":       "amadeus.max_tps",

	// Scoring
	"weight_value":         "scoring.weights.value",
	"weight_seasonal":      "scoring.weights.seasonal",
	"weight_safety":        "scoring.weights.safety",
	"weight_preference":    "scoring.weights.preference",
	"weight_environmental": "scoring.weights.environmental",
	"normalize_weights":    "scoring.normalize_weights",
	"scoring_concurrency":  "scoring.concurrency",

	// Budget
	"budget_mode":        "budget.mode",
	"hours_per_day":      "budget.hours_per_day",
	"activities_per_day": "budget.activities_per_day",

	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":          "server.cors_origins",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - AMADEUS_CLIENT_ID -> amadeus.client_id
//   - PRICE_CACHE_TTL -> pricing.cache_ttl
//   - BUDGET_MODE -> budget.mode
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
