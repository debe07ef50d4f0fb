// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the recommendation engine:
// - Price cache efficiency
// - Price resolution by source
// - Upstream provider attempts, retries and rate limiting
// - Circuit breaker state
// - Scoring and budget optimization
// - API endpoint latency and throughput

var (
	// Price Cache Metrics
	PriceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "itinera_price_cache_hits_total",
			Help: "Total number of price cache hits",
		},
	)

	PriceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "itinera_price_cache_misses_total",
			Help: "Total number of price cache misses, expired entries included",
		},
	)

	PriceCacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinera_price_cache_evictions_total",
			Help: "Total number of price cache evictions",
		},
		[]string{"reason"}, // "capacity", "expired"
	)

	PriceCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "itinera_price_cache_entries",
			Help: "Current number of entries in the price cache",
		},
	)

	// Price Resolution Metrics
	PriceResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinera_price_resolutions_total",
			Help: "Total number of resolved prices by source",
		},
		[]string{"source"}, // "cache", "live", "fallback"
	)

	PriceResolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itinera_price_resolve_duration_seconds",
			Help:    "Duration of price resolution in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 15, 30},
		},
		[]string{"source"},
	)

	// Upstream Provider Metrics
	UpstreamAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinera_upstream_attempts_total",
			Help: "Total number of upstream pricing attempts by outcome",
		},
		[]string{"outcome"}, // "success", "transient", "permanent", "rejected"
	)

	UpstreamRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "itinera_upstream_retries_total",
			Help: "Total number of upstream retries after a transient failure",
		},
	)

	UpstreamRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "itinera_upstream_rate_limited_total",
			Help: "Total number of upstream attempts rejected by the local rate limiter",
		},
	)

	UpstreamRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "itinera_upstream_request_duration_seconds",
			Help:    "Duration of individual upstream requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "itinera_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinera_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Engine Metrics
	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "itinera_scoring_duration_seconds",
			Help:    "Duration of destination scoring in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	OptimizerOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinera_optimizer_outcomes_total",
			Help: "Total number of budget optimizations by outcome",
		},
		[]string{"outcome"}, // "feasible", "infeasible", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "itinera_recommendation_duration_seconds",
			Help:    "End-to-end duration of a recommendation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinera_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itinera_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "itinera_api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)
)

// RecordPriceResolution records a resolved price and its latency.
func RecordPriceResolution(source string, duration time.Duration) {
	PriceResolutions.WithLabelValues(source).Inc()
	PriceResolveDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordUpstreamAttempt records the outcome of a single upstream attempt.
func RecordUpstreamAttempt(outcome string, duration time.Duration) {
	UpstreamAttempts.WithLabelValues(outcome).Inc()
	UpstreamRequestDuration.Observe(duration.Seconds())
}

// RecordCircuitBreakerTransition records a breaker state change and updates
// the state gauge. States use gobreaker's numbering.
func RecordCircuitBreakerTransition(name string, from, to int) {
	CircuitBreakerTransitions.WithLabelValues(name, strconv.Itoa(from), strconv.Itoa(to)).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(float64(to))
}

// RecordOptimizerOutcome counts one optimizer run.
func RecordOptimizerOutcome(outcome string) {
	OptimizerOutcomes.WithLabelValues(outcome).Inc()
}

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
