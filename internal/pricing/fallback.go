// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package pricing

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/antoineeeHao/itinera/internal/models"
)

const (
	// Fallback estimates vary within ±15% of the seasonal base price.
	fluctuationMin   = 0.85
	fluctuationRange = 0.30
)

// PriceTable supplies the reference prices used for fallback estimates.
type PriceTable interface {
	// BasePrice returns the reference price of item in class. For lodging
	// the class is the tier and the price is per night; for activities the
	// class is the travel style.
	BasePrice(item models.Item, class string) float64

	// SeasonalFactor returns the multiplier for item in month.
	SeasonalFactor(item models.Item, month time.Month) float64
}

// EstimatePrice returns the deterministic fallback price of item on date:
// base price × seasonal factor × a fluctuation in [0.85, 1.15] seeded by the
// item ID and date, rounded to cents. The same inputs always give the same
// estimate.
func EstimatePrice(table PriceTable, item models.Item, date time.Time, class string) float64 {
	base := table.BasePrice(item, class)
	if base <= 0 {
		return 0
	}
	factor := table.SeasonalFactor(item, date.Month())
	return RoundCents(base * factor * fluctuation(item.ID, date))
}

// fluctuation draws the seeded multiplier for an item and date.
func fluctuation(itemID string, date time.Time) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(itemID + "|" + models.DateKey(date)))

	rng := rand.New(rand.NewSource(int64(h.Sum64()))) //nolint:gosec // deterministic estimate, not security
	return fluctuationMin + fluctuationRange*rng.Float64()
}

// RoundCents rounds an amount to two decimals.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
