// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	LivePricing  bool    `json:"live_pricing"`
	Currency     string  `json:"currency"`
	Destinations int     `json:"destinations"`
	Uptime       float64 `json:"uptime_seconds"`
}

// Health reports liveness and whether live pricing is configured. Without
// provider credentials the service still answers from estimates, so that
// is not a failure.
//
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:       "healthy",
		Version:      h.version,
		LivePricing:  h.prices.LiveEnabled(),
		Currency:     h.prices.Currency(),
		Destinations: len(h.catalog.Destinations()),
		Uptime:       time.Since(h.startTime).Seconds(),
	})
}
