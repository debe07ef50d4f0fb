// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package api

import (
	"context"
	"time"

	"github.com/antoineeeHao/itinera/internal/catalog"
	"github.com/antoineeeHao/itinera/internal/models"
	"github.com/antoineeeHao/itinera/internal/planner"
)

// Planner produces recommendations and plans.
type Planner interface {
	Recommend(ctx context.Context, req planner.Request) (*planner.Recommendation, error)
	Plan(ctx context.Context, destinationID string, req planner.Request) (models.BudgetPlan, error)
}

// Catalog lists destinations and maps item IDs back to items.
type Catalog interface {
	Destinations() []catalog.Destination
	Activities(destinationID string) []catalog.Activity
	ParseItem(id string) (models.Item, bool)
}

// PriceResolver prices single items.
type PriceResolver interface {
	Resolve(ctx context.Context, item models.Item, date time.Time, class string) models.PriceQuote
	LiveEnabled() bool
	Currency() string
}

// Handler holds the dependencies of the API handlers.
//
// Handler methods are split across files:
//   - handlers_travel.go: destinations, recommendations, plans, prices
//   - handlers_health.go: health
type Handler struct {
	planner   Planner
	catalog   Catalog
	prices    PriceResolver
	startTime time.Time
	version   string
}

// NewHandler creates a Handler.
func NewHandler(p Planner, cat Catalog, prices PriceResolver, version string) *Handler {
	return &Handler{
		planner:   p,
		catalog:   cat,
		prices:    prices,
		startTime: time.Now(),
		version:   version,
	}
}
