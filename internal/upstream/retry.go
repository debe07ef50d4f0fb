// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/antoineeeHao/itinera/internal/logging"
	"github.com/antoineeeHao/itinera/internal/metrics"
)

// Policy configures retries around upstream calls.
type Policy struct {
	// Attempts is the maximum number of attempts, the first one included.
	// Default: 3
	Attempts int

	// BaseDelay is the wait before the first retry; it doubles each time.
	// Default: 500ms
	BaseDelay time.Duration

	// MaxDelay caps the backoff.
	// Default: 8s
	MaxDelay time.Duration

	// AttemptTimeout bounds each individual attempt.
	// Default: 15s
	AttemptTimeout time.Duration
}

// DefaultPolicy returns the production retry policy.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:       3,
		BaseDelay:      500 * time.Millisecond,
		MaxDelay:       8 * time.Second,
		AttemptTimeout: 15 * time.Second,
	}
}

func (p Policy) withDefaults() Policy {
	def := DefaultPolicy()
	if p.Attempts <= 0 {
		p.Attempts = def.Attempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = def.BaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = def.MaxDelay
	}
	if p.AttemptTimeout <= 0 {
		p.AttemptTimeout = def.AttemptTimeout
	}
	return p
}

// Backoff returns the wait after the given failed attempt (0-based).
func (p Policy) Backoff(attempt int) time.Duration {
	delay := p.BaseDelay
	for i := 0; i < attempt; i++ {
		delay *= 2
		if delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// Executor runs upstream calls under the shared rate limiter, the retry
// policy and an optional circuit breaker.
//
// Order per attempt:
//  1. An open breaker short-circuits without consuming a token
//  2. A token is acquired; refusal ends the call with ErrRateLimited
//  3. The call runs under the per-attempt timeout
//  4. Transient failures back off and retry; others return immediately
type Executor struct {
	limiter *Limiter
	breaker *Breaker
	policy  Policy
}

// NewExecutor creates an Executor. breaker may be nil.
func NewExecutor(limiter *Limiter, policy Policy, breaker *Breaker) *Executor {
	return &Executor{
		limiter: limiter,
		breaker: breaker,
		policy:  policy.withDefaults(),
	}
}

// Policy returns the effective retry policy.
func (e *Executor) Policy() Policy {
	return e.policy
}

// Limiter returns the shared rate limiter.
func (e *Executor) Limiter() *Limiter {
	return e.limiter
}

// Execute runs fn until it succeeds, fails permanently, runs out of
// attempts, is rate limited or ctx is done.
func (e *Executor) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error

	for attempt := 0; attempt < e.policy.Attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if e.breaker != nil && e.breaker.Open() {
			return ErrCircuitOpen
		}

		if acqErr := e.limiter.Acquire(); acqErr != nil {
			logging.CtxDebug(ctx).Int("attempt", attempt+1).Msg("Upstream attempt refused by rate limiter")
			return acqErr
		}

		err = e.attempt(ctx, fn)
		if err == nil {
			return nil
		}

		if errors.Is(err, ErrCircuitOpen) || !IsTransient(err) || ctx.Err() != nil {
			return err
		}

		if attempt < e.policy.Attempts-1 {
			delay := e.policy.Backoff(attempt)
			logging.CtxWarn(ctx).Err(err).Int("attempt", attempt+1).Int("max_attempts", e.policy.Attempts).Dur("delay", delay).Msg("Retry attempt")
			metrics.UpstreamRetries.Inc()

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return fmt.Errorf("max retry attempts reached: %w", err)
}

// attempt runs one call under the per-attempt timeout and the breaker.
func (e *Executor) attempt(ctx context.Context, fn func(ctx context.Context) error) error {
	attemptCtx, cancel := context.WithTimeout(ctx, e.policy.AttemptTimeout)
	defer cancel()

	start := time.Now()
	call := func() error { return fn(attemptCtx) }

	var err error
	if e.breaker != nil {
		err = e.breaker.Execute(call)
	} else {
		err = call()
	}

	// A per-attempt timeout that the callee reported as something else is
	// still a timeout.
	if err != nil && ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && !IsTransient(err) && !errors.Is(err, ErrCircuitOpen) {
		err = &Error{Kind: KindTimeout, Message: "attempt timed out", Err: err}
	}

	metrics.RecordUpstreamAttempt(outcome(err), time.Since(start))
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrCircuitOpen):
		return "rejected"
	case IsTransient(err):
		return "transient"
	default:
		return "permanent"
	}
}
