// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package budget fits one destination's trip into a hard spending ceiling.
//
// The travel style fixes which flight classes and lodging tiers are allowed.
// Every allowed pair is priced for the whole stay; among the pairs that fit
// the budget the optimizer keeps the one with the highest combined value
// (economy/budget 1, premium/mid 2, business/luxury 3), then the cheapest,
// then table order. The remaining money buys optional activities:
//
//   - greedy (default): by value density, free activities first, ties by ID
//   - exact: 0/1 knapsack over whole-euro costs
//
// All money is handled in integer cents, so a returned plan's TotalCost
// never exceeds its Budget. When even the cheapest pair is too expensive,
// Optimize returns an *InfeasibleError with the shortfall; it matches
// ErrInfeasible under errors.Is.
//
// Selected activities are laid out over the trip's days, at most
// Config.ActivitiesPerDay and Config.HoursPerDay per day where possible.
package budget
