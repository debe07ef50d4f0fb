// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/antoineeeHao/itinera/internal/models"
)

// isolate points the loader at an empty config path so files in the working
// directory or /etc do not leak into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	saved := DefaultConfigPaths
	DefaultConfigPaths = nil
	t.Cleanup(func() { DefaultConfigPaths = saved })
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pricing.CacheTTL != time.Hour {
		t.Errorf("Pricing.CacheTTL = %v, want 1h", cfg.Pricing.CacheTTL)
	}
	if cfg.Pricing.CacheSize != 1000 {
		t.Errorf("Pricing.CacheSize = %d, want 1000", cfg.Pricing.CacheSize)
	}
	if cfg.Pricing.RequestsPerMinute != 50 {
		t.Errorf("Pricing.RequestsPerMinute = %d, want 50", cfg.Pricing.RequestsPerMinute)
	}
	if cfg.Pricing.Origin != "CDG" {
		t.Errorf("Pricing.Origin = %q, want CDG", cfg.Pricing.Origin)
	}
	if cfg.Scoring.Weights.Value != 0.35 {
		t.Errorf("Scoring.Weights.Value = %v, want 0.35", cfg.Scoring.Weights.Value)
	}
	if cfg.Budget.Mode != "greedy" {
		t.Errorf("Budget.Mode = %q, want greedy", cfg.Budget.Mode)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.HasCredentials() {
		t.Error("HasCredentials() = true with no credentials")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("AMADEUS_CLIENT_ID", "id")
	t.Setenv("AMADEUS_CLIENT_SECRET", "secret")
	t.Setenv("PRICE_CACHE_TTL", "30m")
	t.Setenv("REQUESTS_PER_MINUTE", "0")
	t.Setenv("BREAKER_FAILURES", "2")
	t.Setenv("BUDGET_MODE", "exact")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.HasCredentials() {
		t.Error("HasCredentials() = false, want true")
	}
	if cfg.Pricing.CacheTTL != 30*time.Minute {
		t.Errorf("Pricing.CacheTTL = %v, want 30m", cfg.Pricing.CacheTTL)
	}
	if cfg.Pricing.RequestsPerMinute != 0 {
		t.Errorf("Pricing.RequestsPerMinute = %d, want 0", cfg.Pricing.RequestsPerMinute)
	}
	if cfg.Pricing.BreakerFailures != 2 {
		t.Errorf("Pricing.BreakerFailures = %d, want 2", cfg.Pricing.BreakerFailures)
	}
	if cfg.Budget.Mode != "exact" {
		t.Errorf("Budget.Mode = %q, want exact", cfg.Budget.Mode)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[0] != want[0] || cfg.Server.CORSOrigins[1] != want[1] {
		t.Errorf("Server.CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
pricing:
  cache_size: 50
  origin: ORY
scoring:
  weights:
    value: 0.2
    seasonal: 0.2
    safety: 0.2
    preference: 0.2
    environmental: 0.2
server:
  port: 9090
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9191")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pricing.CacheSize != 50 {
		t.Errorf("Pricing.CacheSize = %d, want 50", cfg.Pricing.CacheSize)
	}
	if cfg.Pricing.Origin != "ORY" {
		t.Errorf("Pricing.Origin = %q, want ORY", cfg.Pricing.Origin)
	}
	if cfg.Scoring.Weights.Safety != 0.2 {
		t.Errorf("Scoring.Weights.Safety = %v, want 0.2", cfg.Scoring.Weights.Safety)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want environment to win with 9191", cfg.Server.Port)
	}
	if cfg.Pricing.CacheTTL != time.Hour {
		t.Errorf("Pricing.CacheTTL = %v, want default 1h", cfg.Pricing.CacheTTL)
	}
}

func TestLoad_InvalidWeightsAreConfigurationErrors(t *testing.T) {
	isolate(t)
	t.Setenv("WEIGHT_VALUE", "0.9")

	_, err := Load()

	var cfgErr *models.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %v, want *models.ConfigurationError", err)
	}
	if cfgErr.Field != "scoring.weights" {
		t.Errorf("Field = %q, want scoring.weights", cfgErr.Field)
	}
}

func TestLoad_NormalizedWeights(t *testing.T) {
	isolate(t)
	t.Setenv("WEIGHT_VALUE", "0.9")
	t.Setenv("NORMALIZE_WEIGHTS", "true")

	if _, err := Load(); err != nil {
		t.Errorf("Load() error = %v, want weights normalized", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"AMADEUS_CLIENT_ID", "amadeus.client_id"},
		{"PRICE_CACHE_PATH", "pricing.cache_path"},
		{"WEIGHT_ENVIRONMENTAL", "scoring.weights.environmental"},
		{"ACTIVITIES_PER_DAY", "budget.activities_per_day"},
		{"HTTP_PORT", "server.port"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}
