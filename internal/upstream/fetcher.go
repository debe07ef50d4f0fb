// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package upstream

import (
	"context"
	"time"

	"github.com/antoineeeHao/itinera/internal/models"
)

// PriceRequest asks the provider for one item's price.
type PriceRequest struct {
	Item     models.Item
	Origin   string // IATA code of the departure airport
	Airport  string // IATA code of the arrival airport
	Date     time.Time
	Class    models.FlightClass
	Currency string
}

// Offer is the provider's answer: the cheapest price found.
type Offer struct {
	Amount   float64
	Currency string
	Carrier  string
}

// Fetcher prices items against a live provider.
type Fetcher interface {
	// Supports reports whether the provider can price items of kind.
	Supports(kind models.ItemKind) bool

	// FetchPrice returns the cheapest offer. Failures are *Error values or
	// ErrNoOffers so the retry executor can classify them.
	FetchPrice(ctx context.Context, req PriceRequest) (Offer, error)
}
