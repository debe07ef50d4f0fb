// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package upstream

import (
	"sync"
	"time"

	"github.com/antoineeeHao/itinera/internal/metrics"
)

const (
	// DefaultRequestsPerMinute is the default rolling request budget.
	DefaultRequestsPerMinute = 50

	// DefaultWindow is the length of the rolling window.
	DefaultWindow = time.Minute
)

// Limiter enforces a rolling-window request budget on upstream attempts.
//
// Every granted attempt is timestamped; a new attempt is allowed only while
// fewer than budget timestamps fall inside the last window. Acquire never
// blocks: callers that are refused fall back to estimated prices.
type Limiter struct {
	mu      sync.Mutex
	budget  int
	window  time.Duration
	stamps  []time.Time
	granted int64
	refused int64
	now     func() time.Time
}

// LimiterOption configures a Limiter.
type LimiterOption func(*Limiter)

// WithWindow overrides the rolling window length.
func WithWindow(d time.Duration) LimiterOption {
	return func(l *Limiter) {
		if d > 0 {
			l.window = d
		}
	}
}

// WithLimiterClock overrides time.Now, for tests.
func WithLimiterClock(now func() time.Time) LimiterOption {
	return func(l *Limiter) {
		l.now = now
	}
}

// NewLimiter creates a Limiter allowing budget attempts per window. A
// budget of zero or less rejects every attempt.
func NewLimiter(budget int, opts ...LimiterOption) *Limiter {
	if budget < 0 {
		budget = 0
	}
	l := &Limiter{
		budget: budget,
		window: DefaultWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.stamps = make([]time.Time, 0, budget)
	return l
}

// Acquire takes one token from the window or returns ErrRateLimited.
func (l *Limiter) Acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if len(l.stamps) >= l.budget {
		l.refused++
		metrics.UpstreamRateLimited.Inc()
		return ErrRateLimited
	}

	l.stamps = append(l.stamps, now)
	l.granted++
	return nil
}

// prune drops timestamps that have left the window. Stamps are appended in
// clock order, so the expired ones form a prefix.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}

// Remaining returns how many attempts the current window still allows.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(l.now())
	return l.budget - len(l.stamps)
}

// Budget returns the configured attempts per window.
func (l *Limiter) Budget() int {
	return l.budget
}

// Attempts returns the total number of granted attempts since creation.
func (l *Limiter) Attempts() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.granted
}

// Refused returns the total number of rejected attempts since creation.
func (l *Limiter) Refused() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refused
}
