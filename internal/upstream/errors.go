// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrRateLimited is returned when the rolling request budget is spent.
	// Callers fall back instead of waiting.
	ErrRateLimited = errors.New("upstream rate limit exceeded")

	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("upstream circuit breaker is open")

	// ErrNoOffers is returned when the provider answers without any priced
	// offer for the requested route.
	ErrNoOffers = errors.New("upstream returned no offers")

	// ErrUnsupported is returned when the provider cannot price an item kind.
	ErrUnsupported = errors.New("upstream does not price this item kind")
)

// ErrorKind classifies upstream failures.
type ErrorKind string

const (
	KindAuth      ErrorKind = "auth"
	KindMalformed ErrorKind = "malformed"
	KindQuota     ErrorKind = "quota"
	KindServer    ErrorKind = "server"
	KindTimeout   ErrorKind = "timeout"
	KindNetwork   ErrorKind = "network"
)

// transient reports whether failures of this kind may succeed on retry.
func (k ErrorKind) transient() bool {
	switch k {
	case KindQuota, KindServer, KindTimeout, KindNetwork:
		return true
	default:
		return false
	}
}

// Error is a classified upstream failure.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "upstream " + string(e.Kind) + " error"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Transient reports whether a retry may succeed.
func (e *Error) Transient() bool {
	return e.Kind.transient()
}

// ErrorForStatus classifies a non-2xx HTTP status.
func ErrorForStatus(status int, message string) *Error {
	var kind ErrorKind
	switch {
	case status == 401 || status == 403:
		kind = KindAuth
	case status == 429:
		kind = KindQuota
	case status == 408:
		kind = KindTimeout
	case status >= 500:
		kind = KindServer
	default:
		kind = KindMalformed
	}
	return &Error{Kind: kind, StatusCode: status, Message: message}
}

// IsTransient reports whether err is worth retrying. Deadline and network
// errors are transient; classified errors decide for themselves; anything
// else, including ErrNoOffers and caller cancellation, is not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var upErr *Error
	if errors.As(err, &upErr) {
		return upErr.Transient()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
