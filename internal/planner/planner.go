// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antoineeeHao/itinera/internal/budget"
	"github.com/antoineeeHao/itinera/internal/logging"
	"github.com/antoineeeHao/itinera/internal/metrics"
	"github.com/antoineeeHao/itinera/internal/models"
	"github.com/antoineeeHao/itinera/internal/recommend"
)

// Scorer ranks destinations for a request.
type Scorer interface {
	Score(ctx context.Context, req recommend.Request) ([]models.ScoredDestination, error)
}

// Optimizer fits one destination into a budget.
type Optimizer interface {
	Optimize(ctx context.Context, req budget.Request) (models.BudgetPlan, error)
}

// Request is a traveler's trip request.
type Request struct {
	StartDate       time.Time
	Nights          int
	Budget          float64
	Style           models.Style
	Interests       []string
	InterestWeights map[string]float64
}

// Recommendation is the ranked destination list plus the plan for the top
// pick. Exactly one of Plan and Infeasible is set.
type Recommendation struct {
	ID          string                     `json:"id"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Ranked      []models.ScoredDestination `json:"ranked"`
	Plan        *models.BudgetPlan         `json:"plan,omitempty"`
	Infeasible  *budget.InfeasibleError    `json:"infeasible,omitempty"`
}

// Top returns the best-ranked destination, or nil for an empty ranking.
func (r *Recommendation) Top() *models.ScoredDestination {
	if len(r.Ranked) == 0 {
		return nil
	}
	return &r.Ranked[0]
}

// Planner runs the request pipeline: score every destination, then
// optimize the top pick.
type Planner struct {
	scorer    Scorer
	optimizer Optimizer
	now       func() time.Time
}

// New creates a Planner.
func New(scorer Scorer, optimizer Optimizer) *Planner {
	return &Planner{
		scorer:    scorer,
		optimizer: optimizer,
		now:       time.Now,
	}
}

// Recommend ranks all destinations and builds a plan for the best one. A
// top pick that cannot fit the budget is reported in Infeasible, not as an
// error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (p *Planner) Recommend(ctx context.Context, req Request) (*Recommendation, error) {
	start := time.Now()
	defer func() { metrics.RecommendationDuration.Observe(time.Since(start).Seconds()) }()

	ranked, err := p.scorer.Score(ctx, recommend.Request{
		StartDate:       req.StartDate,
		Nights:          req.Nights,
		Budget:          req.Budget,
		Style:           req.Style,
		Interests:       req.Interests,
		InterestWeights: req.InterestWeights,
	})
	if err != nil {
		return nil, fmt.Errorf("score destinations: %w", err)
	}

	rec := &Recommendation{
		ID:          uuid.New().String(),
		GeneratedAt: p.now().UTC(),
		Ranked:      ranked,
	}
	top := rec.Top()
	if top == nil {
		return rec, nil
	}

	plan, err := p.Plan(ctx, top.DestinationID, req)
	var infeasible *budget.InfeasibleError
	switch {
	case err == nil:
		rec.Plan = &plan
	case errors.As(err, &infeasible):
		rec.Infeasible = infeasible
	default:
		return nil, err
	}

	logging.CtxInfo(ctx).
		Str("recommendation_id", rec.ID).
		Str("top", top.DestinationID).
		Float64("score", top.Score).
		Bool("feasible", rec.Plan != nil).
		Dur("duration", time.Since(start)).
		Msg("Recommendation generated")

	return rec, nil
}

// Plan builds a budget plan for a chosen destination.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (p *Planner) Plan(ctx context.Context, destinationID string, req Request) (models.BudgetPlan, error) {
	plan, err := p.optimizer.Optimize(ctx, budget.Request{
		DestinationID: destinationID,
		StartDate:     req.StartDate,
		Nights:        req.Nights,
		Budget:        req.Budget,
		Style:         req.Style,
		Interests:     req.Interests,
	})
	if err != nil {
		return models.BudgetPlan{}, fmt.Errorf("optimize %s: %w", destinationID, err)
	}
	return plan, nil
}
