// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package models

// PlannedActivity is an activity the optimizer selected.
type PlannedActivity struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Hours float64  `json:"hours"`
	Cost  float64  `json:"cost"`
	Value float64  `json:"value"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Activities []string `json:"activities"`
	Hours      float64  `json:"hours"`
}

// BudgetPlan is the optimizer's selection for one destination.
// TotalCost never exceeds Budget.
type BudgetPlan struct {
	DestinationID string      `json:"destination_id"`
	Style         Style       `json:"style"`
	Nights        int         `json:"nights"`
	Budget        float64     `json:"budget"`
	FlightClass   FlightClass `json:"flight_class"`
	LodgingTier   LodgingTier `json:"lodging_tier"`

	Activities []PlannedActivity `json:"activities"`
	Days       []DayPlan         `json:"days,omitempty"`

	FlightCost      float64 `json:"flight_cost"`
	LodgingCost     float64 `json:"lodging_cost"`
	ActivitiesCost  float64 `json:"activities_cost"`
	TotalCost       float64 `json:"total_cost"`
	RemainingBudget float64 `json:"remaining_budget"`
	Value           float64 `json:"value"`
	Currency        string  `json:"currency"`

	Quotes []PriceQuote `json:"quotes,omitempty"`
}
