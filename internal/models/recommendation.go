// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package models

// ScoredDestination is one entry of a ranked recommendation.
type ScoredDestination struct {
	DestinationID string             `json:"destination_id"`
	Name          string             `json:"name"`
	Country       string             `json:"country"`
	Rank          int                `json:"rank"`
	Score         float64            `json:"score"`
	Components    map[string]float64 `json:"components"`

	// ResolvedPrice is the estimated base trip cost (flight plus lodging for
	// every night) the value component was computed from.
	ResolvedPrice float64      `json:"resolved_price"`
	Currency      string       `json:"currency"`
	Quotes        []PriceQuote `json:"quotes,omitempty"`
}
