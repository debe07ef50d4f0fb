// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/antoineeeHao/itinera/internal/budget"
	"github.com/antoineeeHao/itinera/internal/catalog"
	"github.com/antoineeeHao/itinera/internal/models"
	"github.com/antoineeeHao/itinera/internal/pricing"
	"github.com/antoineeeHao/itinera/internal/recommend"
)

// newOfflinePlanner wires the real pipeline with no provider credentials,
// so every price is a deterministic estimate.
func newOfflinePlanner(t *testing.T) *Planner {
	t.Helper()

	cat := catalog.New()
	resolver := pricing.NewResolver(pricing.Options{Table: cat})

	scorer, err := recommend.NewScorer(recommend.DefaultConfig(), cat, resolver, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}
	optimizer, err := budget.NewOptimizer(budget.DefaultConfig(), cat, resolver, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}
	return New(scorer, optimizer)
}

func foodieTrip() Request {
	return Request{
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Nights:    5,
		Budget:    800,
		Style:     models.StyleStandard,
		Interests: []string{"foodie"},
	}
}

func TestRecommend_FoodieJuneScenario(t *testing.T) {
	p := newOfflinePlanner(t)

	rec, err := p.Recommend(context.Background(), foodieTrip())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if len(rec.Ranked) != 15 {
		t.Fatalf("len(Ranked) = %d, want 15", len(rec.Ranked))
	}
	if rec.ID == "" {
		t.Error("ID is empty")
	}

	rank := make(map[string]int, len(rec.Ranked))
	for _, d := range rec.Ranked {
		rank[d.DestinationID] = d.Rank
		for _, q := range d.Quotes {
			if q.Source != models.SourceFallback {
				t.Errorf("%s quote source = %s, want fallback without credentials", q.ItemID, q.Source)
			}
		}
	}
	if rank["barcelona"] >= rank["zurich"] {
		t.Errorf("barcelona rank %d should beat zurich rank %d", rank["barcelona"], rank["zurich"])
	}

	if rec.Infeasible != nil {
		t.Fatalf("top pick infeasible: %v", rec.Infeasible)
	}
	if rec.Plan == nil {
		t.Fatal("Plan is nil")
	}
	if rec.Plan.DestinationID != rec.Top().DestinationID {
		t.Errorf("plan for %s, want top pick %s", rec.Plan.DestinationID, rec.Top().DestinationID)
	}
	if rec.Plan.TotalCost > 800 {
		t.Errorf("TotalCost = %v exceeds 800", rec.Plan.TotalCost)
	}
	if len(rec.Plan.Days) != 5 {
		t.Errorf("len(Days) = %d, want 5", len(rec.Plan.Days))
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	p := newOfflinePlanner(t)

	first, err := p.Recommend(context.Background(), foodieTrip())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	second, err := p.Recommend(context.Background(), foodieTrip())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	for i := range first.Ranked {
		a, b := first.Ranked[i], second.Ranked[i]
		if a.DestinationID != b.DestinationID || a.Score != b.Score {
			t.Errorf("position %d: %s %v then %s %v", i, a.DestinationID, a.Score, b.DestinationID, b.Score)
		}
	}
	if first.Plan.TotalCost != second.Plan.TotalCost {
		t.Errorf("plan cost %v then %v", first.Plan.TotalCost, second.Plan.TotalCost)
	}
	if first.ID == second.ID {
		t.Error("recommendation IDs should be unique")
	}
}

func TestRecommend_TopPickInfeasible(t *testing.T) {
	tests := []struct {
		name   string
		budget float64
	}{
		{"below cheapest", 100},
		{"zero budget", 0},
	}

	p := newOfflinePlanner(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := foodieTrip()
			req.Budget = tt.budget

			rec, err := p.Recommend(context.Background(), req)
			if err != nil {
				t.Fatalf("Recommend() error = %v, want infeasibility reported in the result", err)
			}
			if rec.Plan != nil {
				t.Errorf("Plan = %+v, want nil", rec.Plan)
			}
			if rec.Infeasible == nil {
				t.Fatal("Infeasible is nil")
			}
			if rec.Infeasible.Shortfall <= 0 {
				t.Errorf("Shortfall = %v, want positive", rec.Infeasible.Shortfall)
			}
			if rec.Infeasible.DestinationID != rec.Top().DestinationID {
				t.Errorf("infeasible for %s, want top pick %s", rec.Infeasible.DestinationID, rec.Top().DestinationID)
			}
		})
	}
}

func TestRecommend_InvalidRequest(t *testing.T) {
	p := newOfflinePlanner(t)
	req := foodieTrip()
	req.Nights = 0

	if _, err := p.Recommend(context.Background(), req); !errors.Is(err, recommend.ErrInvalidRequest) {
		t.Errorf("Recommend() error = %v, want recommend.ErrInvalidRequest", err)
	}
}

func TestPlan_ChosenDestination(t *testing.T) {
	p := newOfflinePlanner(t)

	plan, err := p.Plan(context.Background(), "krakow", foodieTrip())
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if plan.DestinationID != "krakow" {
		t.Errorf("DestinationID = %s, want krakow", plan.DestinationID)
	}
	if plan.TotalCost > 800 {
		t.Errorf("TotalCost = %v exceeds 800", plan.TotalCost)
	}

	if _, err := p.Plan(context.Background(), "atlantis", foodieTrip()); !errors.Is(err, budget.ErrUnknownDestination) {
		t.Errorf("Plan(atlantis) error = %v, want ErrUnknownDestination", err)
	}
}
