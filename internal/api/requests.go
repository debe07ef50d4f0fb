// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package api

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/antoineeeHao/itinera/internal/models"
	"github.com/antoineeeHao/itinera/internal/planner"
	"github.com/antoineeeHao/itinera/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// TripRequest is the body of POST /api/v1/recommendations.
//
// Fields:
//   - StartDate: first travel day, YYYY-MM-DD
//   - Nights: length of stay (1-30)
//   - Budget: total trip budget in the configured currency
//   - Style: standard, premium or luxury (default standard)
//   - Interests: interest tags; unknown tags are rejected
//   - InterestWeights: optional per-tag weights; weighted tags missing
//     from Interests are added to them
type TripRequest struct {
	StartDate       string             `json:"start_date" validate:"required,isodate"`
	Nights          int                `json:"nights" validate:"gte=1,lte=30"`
	Budget          float64            `json:"budget" validate:"gte=0,lte=1000000"`
	Style           string             `json:"style" validate:"omitempty,style"`
	Interests       []string           `json:"interests" validate:"max=20,dive,interest"`
	InterestWeights map[string]float64 `json:"interest_weights" validate:"omitempty,max=20,dive,keys,interest,endkeys,gte=0,lte=10"`
}

// PlanRequest is the body of POST /api/v1/plans.
type PlanRequest struct {
	DestinationID string `json:"destination_id" validate:"required,max=64"`
	TripRequest
}

// PriceQuery holds the query parameters of GET /api/v1/prices.
type PriceQuery struct {
	Item  string `json:"item" validate:"required,max=128"`
	Date  string `json:"date" validate:"required,isodate"`
	Class string `json:"class" validate:"omitempty,oneof=economy premium business budget mid luxury standard"`
}

// toPlanner converts a validated request. Interest tags are lower-cased
// so "Foodie" and "foodie" count once.
func (t *TripRequest) toPlanner() (planner.Request, error) {
	start, err := time.Parse(validation.DateLayout, t.StartDate)
	if err != nil {
		return planner.Request{}, fmt.Errorf("parse start_date: %w", err)
	}

	style := models.Style(t.Style)
	if style == "" {
		style = models.StyleStandard
	}

	req := planner.Request{
		StartDate: start,
		Nights:    t.Nights,
		Budget:    t.Budget,
		Style:     style,
		Interests: make([]string, 0, len(t.Interests)),
	}
	seen := make(map[string]bool, len(t.Interests)+len(t.InterestWeights))
	for _, tag := range t.Interests {
		tag = strings.ToLower(tag)
		if !seen[tag] {
			seen[tag] = true
			req.Interests = append(req.Interests, tag)
		}
	}
	if len(t.InterestWeights) > 0 {
		req.InterestWeights = make(map[string]float64, len(t.InterestWeights))
		for tag, w := range t.InterestWeights {
			req.InterestWeights[strings.ToLower(tag)] = w
		}
		// Weighted tags count as interests even when not listed.
		extra := make([]string, 0, len(req.InterestWeights))
		for tag := range req.InterestWeights {
			if !seen[tag] {
				seen[tag] = true
				extra = append(extra, tag)
			}
		}
		sort.Strings(extra)
		req.Interests = append(req.Interests, extra...)
	}
	return req, nil
}

// defaultClass is the class a price query uses when none is given.
func defaultClass(kind models.ItemKind) string {
	switch kind {
	case models.ItemFlight:
		return string(models.FlightEconomy)
	case models.ItemLodging:
		return string(models.LodgingBudget)
	}
	return string(models.StyleStandard)
}

// classFits reports whether class is meaningful for kind.
func classFits(kind models.ItemKind, class string) bool {
	switch kind {
	case models.ItemFlight:
		switch models.FlightClass(class) {
		case models.FlightEconomy, models.FlightPremium, models.FlightBusiness:
			return true
		}
	case models.ItemLodging:
		switch models.LodgingTier(class) {
		case models.LodgingBudget, models.LodgingMid, models.LodgingLuxury:
			return true
		}
	case models.ItemActivity:
		return models.Style(class).Valid()
	}
	return false
}
