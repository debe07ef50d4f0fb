// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package upstream

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/antoineeeHao/itinera/internal/logging"
	"github.com/antoineeeHao/itinera/internal/metrics"
)

// BreakerConfig configures the upstream circuit breaker.
type BreakerConfig struct {
	// Name labels the breaker in logs and metrics.
	Name string

	// ConsecutiveFailures trips the breaker.
	// Default: 5
	ConsecutiveFailures uint32

	// OpenTimeout is how long the breaker stays open before probing.
	// Default: 30s
	OpenTimeout time.Duration

	// HalfOpenRequests is the number of probes allowed while half-open.
	// Default: 1
	HalfOpenRequests uint32
}

// Breaker wraps upstream attempts with a circuit breaker.
//
// Only transient failures count against the breaker: an authentication or
// malformed-request failure says nothing about provider health.
//
// The breaker uses real time (via sony/gobreaker) for its open timeout.
type Breaker struct {
	cb   *gobreaker.CircuitBreaker[struct{}]
	name string
}

// NewBreaker creates a closed circuit breaker.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.Name == "" {
		cfg.Name = "upstream"
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if cfg.HalfOpenRequests == 0 {
		cfg.HalfOpenRequests = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	threshold := cfg.ConsecutiveFailures
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= threshold
			if shouldTrip {
				logging.Warn().Str("breaker", cfg.Name).Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerTransition(name, int(from), int(to))
		},

		IsSuccessful: func(err error) bool {
			return err == nil || !IsTransient(err)
		},
	})

	return &Breaker{cb: cb, name: cfg.Name}
}

// Name returns the breaker name.
func (b *Breaker) Name() string {
	return b.name
}

// Open reports whether the breaker is currently rejecting calls.
func (b *Breaker) Open() bool {
	return b.cb.State() == gobreaker.StateOpen
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Execute runs fn through the breaker. Rejections are reported as
// ErrCircuitOpen.
func (b *Breaker) Execute(fn func() error) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCircuitOpen
	}
	return err
}
