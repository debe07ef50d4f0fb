// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/antoineeeHao/itinera/internal/catalog"
	"github.com/antoineeeHao/itinera/internal/models"
)

// ErrInvalidRequest is wrapped by errors for unusable scoring requests.
var ErrInvalidRequest = errors.New("invalid recommendation request")

// Request describes the trip the traveler wants scored.
type Request struct {
	// StartDate is the departure date; its month selects seasonal factors.
	StartDate time.Time

	// Nights is the length of stay.
	Nights int

	// Budget is the total trip budget.
	Budget float64

	// Style constrains flight classes and lodging tiers.
	Style models.Style

	// Interests are catalog tags the traveler cares about.
	Interests []string

	// InterestWeights optionally weights interests. Missing interests
	// weigh 1.
	InterestWeights map[string]float64
}

// DestinationSource supplies the destinations to score.
type DestinationSource interface {
	Destinations() []catalog.Destination
}

// PriceResolver resolves item prices. Resolve must not fail; it falls back
// to estimates.
type PriceResolver interface {
	Resolve(ctx context.Context, item models.Item, date time.Time, class string) models.PriceQuote
}
