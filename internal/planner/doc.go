// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package planner runs a trip request end to end: every catalog destination
// is scored and ranked, then the top pick is fitted to the budget.
//
// A top pick whose cheapest flight and lodging exceed the budget is not an
// error; the Recommendation carries the *budget.InfeasibleError with the
// shortfall instead of a plan.
package planner
