// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/antoineeeHao/itinera/internal/middleware"
)

// Router wires the handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	timeout       time.Duration
}

// NewRouter creates a Router. A zero timeout disables the per-request
// deadline.
func NewRouter(handler *Handler, mw *ChiMiddleware, timeout time.Duration) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		timeout:       timeout,
	}
}

// SetupChi builds the HTTP handler:
//
//	GET  /health
//	GET  /metrics
//	GET  /api/v1/destinations
//	POST /api/v1/recommendations
//	POST /api/v1/plans
//	GET  /api/v1/prices
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		if router.timeout > 0 {
			r.Use(chimiddleware.Timeout(router.timeout))
		}

		r.Get("/destinations", router.handler.Destinations)
		r.Post("/recommendations", router.handler.Recommendations)
		r.Post("/plans", router.handler.Plans)
		r.Get("/prices", router.handler.Prices)
	})

	return r
}
