// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

/*
Package metrics provides Prometheus metrics for the recommendation engine.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Price Cache:
  - itinera_price_cache_hits_total (counter)
  - itinera_price_cache_misses_total (counter)
  - itinera_price_cache_evictions_total (counter), labels: reason
  - itinera_price_cache_entries (gauge)

Price Resolution:
  - itinera_price_resolutions_total (counter), labels: source
  - itinera_price_resolve_duration_seconds (histogram), labels: source

Upstream Provider:
  - itinera_upstream_attempts_total (counter), labels: outcome
  - itinera_upstream_retries_total (counter)
  - itinera_upstream_rate_limited_total (counter)
  - itinera_upstream_request_duration_seconds (histogram)

Circuit Breaker:
  - itinera_circuit_breaker_state (gauge), labels: name
  - itinera_circuit_breaker_transitions_total (counter), labels: name, from, to

Engine:
  - itinera_scoring_duration_seconds (histogram)
  - itinera_optimizer_outcomes_total (counter), labels: outcome
  - itinera_recommendation_duration_seconds (histogram)

API:
  - itinera_api_requests_total (counter), labels: method, endpoint, status_code
  - itinera_api_request_duration_seconds (histogram), labels: method, endpoint
  - itinera_api_active_requests (gauge)

# Usage

Record helpers wrap the common label combinations:

	start := time.Now()
	// ... resolve a price ...
	metrics.RecordPriceResolution("live", time.Since(start))

Collectors can also be used directly:

	metrics.PriceCacheHits.Inc()
*/
package metrics
