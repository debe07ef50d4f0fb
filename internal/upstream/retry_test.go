// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package upstream

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func fastPolicy() Policy {
	return Policy{
		Attempts:       3,
		BaseDelay:      time.Millisecond,
		MaxDelay:       4 * time.Millisecond,
		AttemptTimeout: 200 * time.Millisecond,
	}
}

func TestPolicy_Backoff(t *testing.T) {
	p := DefaultPolicy()

	want := []time.Duration{
		500 * time.Millisecond,
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		8 * time.Second,
	}
	for attempt, w := range want {
		if got := p.Backoff(attempt); got != w {
			t.Errorf("Backoff(%d) = %v, want %v", attempt, got, w)
		}
	}
}

func TestNewExecutor_Defaults(t *testing.T) {
	e := NewExecutor(NewLimiter(1), Policy{}, nil)
	if e.Policy() != DefaultPolicy() {
		t.Errorf("Policy() = %+v, want defaults", e.Policy())
	}
}

func TestExecutor_SucceedsFirstTry(t *testing.T) {
	limiter := NewLimiter(10)
	e := NewExecutor(limiter, fastPolicy(), nil)

	var calls int32
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if calls != 1 || limiter.Attempts() != 1 {
		t.Errorf("calls=%d attempts=%d, want 1/1", calls, limiter.Attempts())
	}
}

func TestExecutor_RetriesTransient(t *testing.T) {
	limiter := NewLimiter(10)
	e := NewExecutor(limiter, fastPolicy(), nil)

	var calls int32
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			return &Error{Kind: KindServer, StatusCode: 503}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if limiter.Attempts() != 2 {
		t.Errorf("every attempt consumes a token: Attempts() = %d, want 2", limiter.Attempts())
	}
}

func TestExecutor_PermanentFailureStops(t *testing.T) {
	e := NewExecutor(NewLimiter(10), fastPolicy(), nil)

	var calls int32
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return &Error{Kind: KindAuth, StatusCode: 401}
	})

	var upErr *Error
	if !errors.As(err, &upErr) || upErr.Kind != KindAuth {
		t.Fatalf("Execute() error = %v, want auth error", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	limiter := NewLimiter(10)
	e := NewExecutor(limiter, fastPolicy(), nil)

	var calls int32
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return &Error{Kind: KindQuota, StatusCode: 429}
	})
	if err == nil {
		t.Fatal("Execute() error = nil, want failure")
	}
	if !IsTransient(err) {
		t.Errorf("final error should keep its transient classification: %v", err)
	}
	if calls != 3 || limiter.Attempts() != 3 {
		t.Errorf("calls=%d attempts=%d, want 3/3", calls, limiter.Attempts())
	}
}

func TestExecutor_ZeroBudgetMakesNoAttempt(t *testing.T) {
	limiter := NewLimiter(0)
	e := NewExecutor(limiter, fastPolicy(), nil)

	var calls int32
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Execute() error = %v, want ErrRateLimited", err)
	}
	if calls != 0 || limiter.Attempts() != 0 {
		t.Errorf("calls=%d attempts=%d, want 0/0", calls, limiter.Attempts())
	}
}

func TestExecutor_RateLimitedMidRetry(t *testing.T) {
	limiter := NewLimiter(1)
	e := NewExecutor(limiter, fastPolicy(), nil)

	var calls int32
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return &Error{Kind: KindServer, StatusCode: 500}
	})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Execute() error = %v, want ErrRateLimited", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestExecutor_AttemptTimeout(t *testing.T) {
	p := fastPolicy()
	p.AttemptTimeout = 10 * time.Millisecond
	e := NewExecutor(NewLimiter(10), p, nil)

	var calls int32
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Execute() error = %v, want deadline exceeded", err)
	}
	if calls != 3 {
		t.Errorf("timeouts are transient: calls = %d, want 3", calls)
	}
}

func TestExecutor_ContextCanceledDuringBackoff(t *testing.T) {
	p := fastPolicy()
	p.BaseDelay = time.Hour
	p.MaxDelay = time.Hour
	e := NewExecutor(NewLimiter(10), p, nil)

	ctx, cancel := context.WithCancel(context.Background())
	var calls int32

	done := make(chan error, 1)
	go func() {
		done <- e.Execute(ctx, func(ctx context.Context) error {
			atomic.AddInt32(&calls, 1)
			return &Error{Kind: KindServer, StatusCode: 502}
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Execute() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Execute() did not return after cancellation")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestExecutor_BreakerShortCircuitsWithoutTokens(t *testing.T) {
	limiter := NewLimiter(10)
	breaker := NewBreaker(BreakerConfig{Name: "test-short-circuit", ConsecutiveFailures: 2, OpenTimeout: time.Minute})
	e := NewExecutor(limiter, fastPolicy(), breaker)

	var calls int32
	fail := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return &Error{Kind: KindServer, StatusCode: 500}
	}

	err := e.Execute(context.Background(), fail)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("Execute() error = %v, want ErrCircuitOpen after the breaker trips", err)
	}
	if calls != 2 || limiter.Attempts() != 2 {
		t.Fatalf("calls=%d attempts=%d, want 2/2", calls, limiter.Attempts())
	}
	if !breaker.Open() {
		t.Fatalf("breaker state = %s, want open", breaker.State())
	}

	err = e.Execute(context.Background(), fail)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("Execute() on open breaker error = %v, want ErrCircuitOpen", err)
	}
	if limiter.Attempts() != 2 {
		t.Errorf("open breaker consumed tokens: Attempts() = %d, want 2", limiter.Attempts())
	}
}

func TestBreaker_IgnoresPermanentFailures(t *testing.T) {
	breaker := NewBreaker(BreakerConfig{Name: "test-permanent", ConsecutiveFailures: 2})

	for i := 0; i < 5; i++ {
		err := breaker.Execute(func() error {
			return &Error{Kind: KindMalformed, StatusCode: 400}
		})
		if errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("call %d rejected: permanent failures must not trip the breaker", i+1)
		}
	}
	if breaker.State() != "closed" {
		t.Errorf("State() = %s, want closed", breaker.State())
	}
}

func TestBreaker_Defaults(t *testing.T) {
	b := NewBreaker(BreakerConfig{})
	if b.Name() != "upstream" {
		t.Errorf("Name() = %q, want upstream", b.Name())
	}
	if b.Open() {
		t.Error("new breaker should be closed")
	}
}
