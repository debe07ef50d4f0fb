// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

/*
Package upstream talks to the live flight price provider.

It owns everything between the price resolver and the network:
  - Limiter: a rolling 60-second request budget shared by the process
  - Executor: bounded retries with exponential backoff and a per-attempt
    timeout, optionally behind a circuit breaker
  - Breaker: a sony/gobreaker circuit breaker that only counts transient
    failures
  - AmadeusClient: the Amadeus flight-offers search, authenticated with the
    OAuth2 client-credentials flow

# Failure Classification

Every failure is reported as an *Error with a Kind, or as one of the
sentinels. Timeouts, 5xx responses, 429 quota responses and network errors
are transient and retried. Authentication failures, malformed requests,
undecodable responses and empty offer lists are permanent.

# Usage

	limiter := upstream.NewLimiter(50)
	breaker := upstream.NewBreaker(upstream.BreakerConfig{Name: "amadeus"})
	exec := upstream.NewExecutor(limiter, upstream.DefaultPolicy(), breaker)

	var offer upstream.Offer
	err := exec.Execute(ctx, func(ctx context.Context) error {
	    var err error
	    offer, err = client.FetchPrice(ctx, req)
	    return err
	})

A refused token ends the call with ErrRateLimited immediately; the caller
is expected to fall back rather than wait.
*/
package upstream
