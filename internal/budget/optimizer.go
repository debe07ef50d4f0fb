// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package budget

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/antoineeeHao/itinera/internal/catalog"
	"github.com/antoineeeHao/itinera/internal/metrics"
	"github.com/antoineeeHao/itinera/internal/models"
)

// Optimizer outcomes recorded in metrics.
const (
	outcomeFeasible   = "feasible"
	outcomeInfeasible = "infeasible"
	outcomeError      = "error"
)

// Catalog supplies destinations and their optional activities.
type Catalog interface {
	Destination(id string) (catalog.Destination, bool)
	Activities(destinationID string) []catalog.Activity
}

// PriceResolver resolves item prices. Resolve must not fail; it falls back
// to estimates.
type PriceResolver interface {
	Resolve(ctx context.Context, item models.Item, date time.Time, class string) models.PriceQuote
}

// Request describes the plan to build for one destination.
type Request struct {
	DestinationID string
	StartDate     time.Time
	Nights        int
	Budget        float64
	Style         models.Style
	Interests     []string
}

// Optimizer fits a destination's flight, lodging and activities into a
// budget. It is safe for concurrent use.
type Optimizer struct {
	config  *Config
	catalog Catalog
	prices  PriceResolver
	logger  zerolog.Logger
}

// NewOptimizer creates an Optimizer. An invalid configuration returns a
// *models.ConfigurationError.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewOptimizer(cfg *Config, cat Catalog, prices PriceResolver, logger zerolog.Logger) (*Optimizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Optimizer{
		config:  cfg,
		catalog: cat,
		prices:  prices,
		logger:  logger.With().Str("component", "optimizer").Logger(),
	}, nil
}

// Mode returns the activity selection mode.
func (o *Optimizer) Mode() Mode {
	return o.config.Mode
}

// option is one allowed flight class and lodging tier pair.
type option struct {
	order   int
	flight  models.PriceQuote
	lodging models.PriceQuote
	class   models.FlightClass
	tier    models.LodgingTier
	cost    int64 // cents, lodging for every night included
	value   int
}

// Optimize picks the most valuable allowed flight class and lodging tier
// that fit the budget, then fills the rest with activities. When no pair
// fits it returns an *InfeasibleError carrying the shortfall. A returned
// plan never costs more than the budget.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (o *Optimizer) Optimize(ctx context.Context, req Request) (models.BudgetPlan, error) {
	plan, err := o.optimize(ctx, &req)
	switch {
	case err == nil:
		metrics.RecordOptimizerOutcome(outcomeFeasible)
	case errors.Is(err, ErrInfeasible):
		metrics.RecordOptimizerOutcome(outcomeInfeasible)
	default:
		metrics.RecordOptimizerOutcome(outcomeError)
	}
	return plan, err
}

func (o *Optimizer) optimize(ctx context.Context, req *Request) (models.BudgetPlan, error) {
	if err := validateRequest(req); err != nil {
		return models.BudgetPlan{}, err
	}
	dest, ok := o.catalog.Destination(req.DestinationID)
	if !ok {
		return models.BudgetPlan{}, fmt.Errorf("%w: %q", ErrUnknownDestination, req.DestinationID)
	}
	if err := ctx.Err(); err != nil {
		return models.BudgetPlan{}, err
	}

	budget := budgetCents(req.Budget)
	options := o.priceOptions(ctx, &dest, req)

	feasible := make([]option, 0, len(options))
	cheapest := options[0]
	for _, opt := range options {
		if opt.cost < cheapest.cost {
			cheapest = opt
		}
		if opt.cost <= budget {
			feasible = append(feasible, opt)
		}
	}
	if len(feasible) == 0 {
		err := &InfeasibleError{
			DestinationID: dest.ID,
			Budget:        fromCents(budget),
			CheapestCost:  fromCents(cheapest.cost),
			Shortfall:     fromCents(cheapest.cost - budget),
			Currency:      cheapest.flight.Currency,
		}
		o.logger.Info().
			Str("destination", dest.ID).
			Float64("budget", err.Budget).
			Float64("shortfall", err.Shortfall).
			Msg("no plan fits the budget")
		return models.BudgetPlan{}, err
	}

	sort.SliceStable(feasible, func(i, j int) bool {
		a, b := feasible[i], feasible[j]
		if a.value != b.value {
			return a.value > b.value
		}
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		return a.order < b.order
	})
	chosen := feasible[0]
	remaining := budget - chosen.cost

	acts := o.catalog.Activities(dest.ID)
	cands, actQuotes := o.priceActivities(ctx, acts, req)

	var picked []candidate
	if o.config.Mode == ModeExact {
		picked = selectExact(cands, remaining)
	} else {
		picked = selectGreedy(cands, remaining)
	}

	planned := make([]models.PlannedActivity, 0, len(picked))
	quotes := []models.PriceQuote{chosen.flight, chosen.lodging}
	var actCost int64
	actValue := 0.0
	for _, c := range picked {
		a := &acts[c.index]
		planned = append(planned, models.PlannedActivity{
			ID:    a.ID,
			Name:  a.Name,
			Tags:  tagStrings(a.Tags),
			Hours: a.Hours,
			Cost:  fromCents(c.cost),
			Value: c.value,
		})
		quotes = append(quotes, actQuotes[c.index])
		actCost += c.cost
		actValue += c.value
	}

	total := chosen.cost + actCost
	if total > budget {
		// Unreachable: selection only spends what remains.
		return models.BudgetPlan{}, fmt.Errorf("plan for %s costs %d cents over budget %d", dest.ID, total, budget)
	}

	plan := models.BudgetPlan{
		DestinationID:   dest.ID,
		Style:           req.Style,
		Nights:          req.Nights,
		Budget:          fromCents(budget),
		FlightClass:     chosen.class,
		LodgingTier:     chosen.tier,
		Activities:      planned,
		Days:            schedule(planned, req.StartDate, req.Nights, o.config.ActivitiesPerDay, o.config.HoursPerDay),
		FlightCost:      fromCents(toCents(chosen.flight.Amount)),
		LodgingCost:     fromCents(chosen.cost - toCents(chosen.flight.Amount)),
		ActivitiesCost:  fromCents(actCost),
		TotalCost:       fromCents(total),
		RemainingBudget: fromCents(budget - total),
		Value:           float64(chosen.value) + actValue,
		Currency:        chosen.flight.Currency,
		Quotes:          quotes,
	}

	o.logger.Debug().
		Str("destination", dest.ID).
		Str("flight_class", string(plan.FlightClass)).
		Str("lodging_tier", string(plan.LodgingTier)).
		Int("activities", len(plan.Activities)).
		Float64("total_cost", plan.TotalCost).
		Float64("remaining", plan.RemainingBudget).
		Str("mode", string(o.config.Mode)).
		Msg("plan optimized")

	return plan, nil
}

// priceOptions resolves every allowed flight class and lodging tier once
// and returns the pairs in table order.
func (o *Optimizer) priceOptions(ctx context.Context, dest *catalog.Destination, req *Request) []option {
	opts := req.Style.Options()

	flightItem := catalog.FlightItem(o.config.Origin, dest)
	flights := make([]models.PriceQuote, len(opts.Flights))
	for i, class := range opts.Flights {
		flights[i] = o.prices.Resolve(ctx, flightItem, req.StartDate, string(class))
	}

	lodgingItem := catalog.LodgingItem(dest)
	lodging := make([]models.PriceQuote, len(opts.Lodging))
	for i, tier := range opts.Lodging {
		lodging[i] = o.prices.Resolve(ctx, lodgingItem, req.StartDate, string(tier))
	}

	out := make([]option, 0, len(flights)*len(lodging))
	for fi, class := range opts.Flights {
		for li, tier := range opts.Lodging {
			out = append(out, option{
				order:   len(out),
				flight:  flights[fi],
				lodging: lodging[li],
				class:   class,
				tier:    tier,
				cost:    toCents(flights[fi].Amount) + toCents(lodging[li].Amount)*int64(req.Nights),
				value:   class.Value() + tier.Value(),
			})
		}
	}
	return out
}

// priceActivities resolves every activity with the style as class and
// scores it: 1 + 2 × matching interest tags + hours/10.
func (o *Optimizer) priceActivities(ctx context.Context, acts []catalog.Activity, req *Request) ([]candidate, []models.PriceQuote) {
	interests := make(map[catalog.Tag]bool, len(req.Interests))
	for _, raw := range req.Interests {
		if name := strings.ToLower(strings.TrimSpace(raw)); name != "" {
			interests[catalog.Tag(name)] = true
		}
	}

	cands := make([]candidate, len(acts))
	quotes := make([]models.PriceQuote, len(acts))
	for i := range acts {
		a := &acts[i]
		quotes[i] = o.prices.Resolve(ctx, catalog.ActivityItem(a), req.StartDate, string(req.Style))

		match := 0
		for _, t := range a.Tags {
			if interests[t] {
				match++
			}
		}
		cands[i] = candidate{
			id:    a.ID,
			index: i,
			cost:  toCents(quotes[i].Amount),
			value: 1 + 2*float64(match) + a.Hours/10,
		}
	}
	return cands, quotes
}

func validateRequest(req *Request) error {
	switch {
	case req.DestinationID == "":
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	case req.Budget < 0 || math.IsNaN(req.Budget) || math.IsInf(req.Budget, 0):
		return fmt.Errorf("%w: budget must be a non-negative amount, got %v", ErrInvalidRequest, req.Budget)
	case req.Nights < 1:
		return fmt.Errorf("%w: nights must be at least 1, got %d", ErrInvalidRequest, req.Nights)
	case !req.Style.Valid():
		return fmt.Errorf("%w: unknown style %q", ErrInvalidRequest, req.Style)
	case req.StartDate.IsZero():
		return fmt.Errorf("%w: start date is required", ErrInvalidRequest)
	}
	return nil
}

func tagStrings(tags []catalog.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

// toCents rounds an amount to whole cents. Negative amounts price at zero.
func toCents(amount float64) int64 {
	if amount <= 0 {
		return 0
	}
	return int64(math.Round(amount * 100))
}

// budgetCents truncates a budget to whole cents.
func budgetCents(amount float64) int64 {
	if amount <= 0 {
		return 0
	}
	return int64(math.Floor(amount*100 + 1e-6))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}
