// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

/*
Package models defines the data structures shared across Itinera.

It holds the value types that flow between the price resolution subsystem,
the destination scorer, the budget optimizer and the HTTP layer, so that none
of those packages has to import another just for a struct definition.

Key Components:

  - PriceQuote: an immutable price for one item, date and class, tagged with
    where it came from (cache, live upstream, or the fallback model)
  - Item: a priceable thing (flight route, nightly lodging, activity)
  - ScoredDestination: one ranked entry of a recommendation
  - BudgetPlan: the optimizer's selection and cost breakdown
  - APIResponse: standard HTTP response wrapper

Travel options (FlightClass, LodgingTier, Style) are string types so they
serialize as readable JSON and can be validated with go-playground/validator
oneof tags.
*/
package models
