// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

/*
Package api serves the planner over JSON HTTP using the chi router.

Routes:

	GET  /health                  liveness and live-pricing status
	GET  /metrics                 Prometheus metrics
	GET  /api/v1/destinations     the catalog with activities
	POST /api/v1/recommendations  ranked destinations plus a plan for the top pick
	POST /api/v1/plans            a plan for a chosen destination
	GET  /api/v1/prices           one resolved price quote

Every response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", ...}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "...", "details": [...]}}

Request bodies are validated with the validation package. A budget the
chosen destination cannot meet is a 422 BUDGET_INFEASIBLE on /plans; on
/recommendations it is a 200 whose data carries "infeasible" with the
shortfall instead of "plan".

The /api/v1 group is rate limited per client IP with go-chi/httprate and
instrumented by middleware.PrometheusMetrics.
*/
package api
