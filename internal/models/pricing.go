// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package models

import "time"

// ItemKind distinguishes the kinds of things the price resolver can price.
type ItemKind string

const (
	ItemFlight   ItemKind = "flight"
	ItemLodging  ItemKind = "lodging"
	ItemActivity ItemKind = "activity"
)

// Item identifies a priceable line item.
//
// ID is the route or item identifier used in cache keys and fallback seeds:
// "CDG-BCN" for flights, "lodging:barcelona" for lodging, and the activity
// ID for activities.
type Item struct {
	ID            string   `json:"id"`
	Kind          ItemKind `json:"kind"`
	DestinationID string   `json:"destination_id"`
}

// PriceSource records where a quote came from.
type PriceSource string

const (
	SourceCache    PriceSource = "cache"
	SourceLive     PriceSource = "live"
	SourceFallback PriceSource = "fallback"
)

// PriceQuote is a resolved price for one item on one date in one class.
// Quotes are values: once produced they are never mutated.
type PriceQuote struct {
	ItemID     string      `json:"item_id"`
	Date       string      `json:"date"`
	Class      string      `json:"class"`
	Amount     float64     `json:"amount"`
	Currency   string      `json:"currency"`
	Source     PriceSource `json:"source"`
	ResolvedAt time.Time   `json:"resolved_at"`
}

// DateKey formats a travel date the way quotes and cache keys carry it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
