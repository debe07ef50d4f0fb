// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordPriceResolution(t *testing.T) {
	sources := []string{"cache", "live", "fallback"}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			before := testutil.ToFloat64(PriceResolutions.WithLabelValues(source))
			RecordPriceResolution(source, 3*time.Millisecond)
			after := testutil.ToFloat64(PriceResolutions.WithLabelValues(source))

			if after != before+1 {
				t.Errorf("PriceResolutions{%s} = %v, want %v", source, after, before+1)
			}
		})
	}
}

func TestRecordUpstreamAttempt(t *testing.T) {
	before := testutil.ToFloat64(UpstreamAttempts.WithLabelValues("transient"))

	RecordUpstreamAttempt("transient", 120*time.Millisecond)
	RecordUpstreamAttempt("transient", 80*time.Millisecond)

	after := testutil.ToFloat64(UpstreamAttempts.WithLabelValues("transient"))
	if after != before+2 {
		t.Errorf("UpstreamAttempts{transient} = %v, want %v", after, before+2)
	}

	m := &dto.Metric{}
	if err := UpstreamRequestDuration.Write(m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleCount() < 2 {
		t.Errorf("histogram sample count = %d, want >= 2", m.GetHistogram().GetSampleCount())
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	RecordCircuitBreakerTransition("amadeus-test", 0, 2)

	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("amadeus-test")); got != 2 {
		t.Errorf("CircuitBreakerState = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("amadeus-test", "0", "2")); got != 1 {
		t.Errorf("CircuitBreakerTransitions = %v, want 1", got)
	}

	RecordCircuitBreakerTransition("amadeus-test", 2, 1)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("amadeus-test")); got != 1 {
		t.Errorf("CircuitBreakerState after half-open = %v, want 1", got)
	}
}

func TestRecordOptimizerOutcome(t *testing.T) {
	before := testutil.ToFloat64(OptimizerOutcomes.WithLabelValues("infeasible"))
	RecordOptimizerOutcome("infeasible")
	if got := testutil.ToFloat64(OptimizerOutcomes.WithLabelValues("infeasible")); got != before+1 {
		t.Errorf("OptimizerOutcomes{infeasible} = %v, want %v", got, before+1)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
	}{
		{"list destinations", "GET", "/api/v1/destinations", "200"},
		{"recommendation", "POST", "/api/v1/recommendations", "200"},
		{"bad plan request", "POST", "/api/v1/plans", "400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode)
			before := testutil.ToFloat64(counter)
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, 10*time.Millisecond)
			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("APIRequestsTotal = %v, want %v", got, before+1)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+2 {
		t.Errorf("APIActiveRequests = %v, want %v", got, before+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("APIActiveRequests = %v, want %v", got, before)
	}
}
