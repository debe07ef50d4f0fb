// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/antoineeeHao/itinera/internal/logging"
)

func serveWithRequestID(header string) (requestID, correlationID string, rec *httptest.ResponseRecorder) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = logging.RequestIDFromContext(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return requestID, correlationID, rec
}

func TestRequestID_GeneratesID(t *testing.T) {
	requestID, correlationID, rec := serveWithRequestID("")

	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("request ID %q is not a UUID: %v", requestID, err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != requestID {
		t.Errorf("response header = %q, want %q", got, requestID)
	}
	if correlationID == "" || correlationID == requestID {
		t.Errorf("correlation ID = %q, want a distinct ID", correlationID)
	}
}

func TestRequestID_UpstreamHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{"proxy id", "edge-42.abc_DEF", true},
		{"uuid", "5f1c7d2e-8c1a-4a51-9a0b-6a0f1b2c3d4e", true},
		{"spaces", "id with spaces", false},
		{"newline", "id\nforged: header", false},
		{"too long", strings.Repeat("a", maxRequestIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestID, _, _ := serveWithRequestID(tt.header)
			if reused := requestID == tt.header; reused != tt.reused {
				t.Errorf("reused = %v, want %v (got %q)", reused, tt.reused, requestID)
			}
			if requestID == "" {
				t.Error("empty request ID")
			}
		})
	}
}
