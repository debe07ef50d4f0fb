// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/antoineeeHao/itinera/internal/catalog"
	"github.com/antoineeeHao/itinera/internal/metrics"
	"github.com/antoineeeHao/itinera/internal/models"
)

// Scorer ranks catalog destinations for a trip request.
// It is safe for concurrent use.
type Scorer struct {
	config  *Config
	weights Weights
	dests   DestinationSource
	prices  PriceResolver
	logger  zerolog.Logger
}

// NewScorer creates a Scorer. An invalid configuration, weights that do not
// sum to 1.0 included, returns a *models.ConfigurationError.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewScorer(cfg *Config, dests DestinationSource, prices PriceResolver, logger zerolog.Logger) (*Scorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	own := *cfg
	cfg = &own
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}

	return &Scorer{
		config:  cfg,
		weights: cfg.effectiveWeights(),
		dests:   dests,
		prices:  prices,
		logger:  logger.With().Str("component", "scorer").Logger(),
	}, nil
}

// Weights returns the weights applied to component scores.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Origin returns the departure airport used for flight prices.
func (s *Scorer) Origin() string {
	return s.config.Origin
}

// validateRequest rejects requests that cannot be scored.
func validateRequest(req *Request) error {
	switch {
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

// tripCost is the base cost estimate of one destination.
type tripCost struct {
	total    float64
	currency string
	quotes   []models.PriceQuote
}

// Score computes the composite score of every destination and returns
// them ranked best first. Ties keep a stable order by destination ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Scorer) Score(ctx context.Context, req Request) ([]models.ScoredDestination, error) {
	start := time.Now()
	defer func() { metrics.ScoringDuration.Observe(time.Since(start).Seconds()) }()

	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	dests := s.dests.Destinations()
	if len(dests) == 0 {
		return []models.ScoredDestination{}, nil
	}

	costs, err := s.resolveCosts(ctx, &req, dests)
	if err != nil {
		return nil, err
	}

	month := req.StartDate.Month()
	bestSeason := 0.0
	minSafety, maxSafety := math.Inf(1), math.Inf(-1)
	minCO2, maxCO2 := math.Inf(1), math.Inf(-1)
	for i := range dests {
		bestSeason = math.Max(bestSeason, dests[i].SeasonalFactor(month))
		minSafety = math.Min(minSafety, dests[i].Safety)
		maxSafety = math.Max(maxSafety, dests[i].Safety)
		minCO2 = math.Min(minCO2, dests[i].CO2Kg)
		maxCO2 = math.Max(maxCO2, dests[i].CO2Kg)
	}

	interests := interestWeights(&req)

	scored := make([]models.ScoredDestination, len(dests))
	for i := range dests {
		d := &dests[i]

		components := map[string]float64{
			ComponentValue:         valueScore(costs[i].total, req.Budget),
			ComponentSeasonal:      ratio(d.SeasonalFactor(month), bestSeason),
			ComponentSafety:        minMax(d.Safety, minSafety, maxSafety),
			ComponentPreference:    preferenceScore(d, interests),
			ComponentEnvironmental: 1 - minMax(d.CO2Kg, minCO2, maxCO2),
		}

		scored[i] = models.ScoredDestination{
			DestinationID: d.ID,
			Name:          d.Name,
			Country:       d.Country,
			Score:         s.composite(components),
			Components:    components,
			ResolvedPrice: costs[i].total,
			Currency:      costs[i].currency,
			Quotes:        costs[i].quotes,
		}
	}

	Rank(scored)

	s.logger.Debug().
		Int("destinations", len(scored)).
		Str("top", scored[0].DestinationID).
		Float64("top_score", scored[0].Score).
		Dur("duration", time.Since(start)).
		Msg("destinations scored")

	return scored, nil
}

// resolveCosts prices the cheapest allowed flight and lodging for every
// destination, a few destinations at a time.
func (s *Scorer) resolveCosts(ctx context.Context, req *Request, dests []catalog.Destination) ([]tripCost, error) {
	opts := req.Style.Options()
	flightClass := string(opts.Flights[0])
	lodgingTier := string(opts.Lodging[0])

	costs := make([]tripCost, len(dests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i := range dests {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d := &dests[i]
			flight := s.prices.Resolve(gctx, catalog.FlightItem(s.config.Origin, d), req.StartDate, flightClass)
			lodging := s.prices.Resolve(gctx, catalog.LodgingItem(d), req.StartDate, lodgingTier)

			costs[i] = tripCost{
				total:    math.Round((flight.Amount+lodging.Amount*float64(req.Nights))*100) / 100,
				currency: flight.Currency,
				quotes:   []models.PriceQuote{flight, lodging},
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve trip costs: %w", err)
	}
	return costs, nil
}

// composite combines component scores with the configured weights.
func (s *Scorer) composite(c map[string]float64) float64 {
	w := s.weights
	return w.Value*c[ComponentValue] +
		w.Seasonal*c[ComponentSeasonal] +
		w.Safety*c[ComponentSafety] +
		w.Preference*c[ComponentPreference] +
		w.Environmental*c[ComponentEnvironmental]
}

// Rank sorts destinations by score, best first, ties by ID ascending, and
// assigns 1-based ranks.
func Rank(scored []models.ScoredDestination) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].DestinationID < scored[j].DestinationID
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
}

// valueScore maps the cost-to-budget ratio to [0, 1]. Trips within budget
// score at least 0.7; trips over budget drop off fast.
func valueScore(cost, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	r := cost / budget
	if r <= 1 {
		return clamp01(0.7 + 0.3*(1-r))
	}
	return clamp01(0.1 - 0.5*(r-1))
}

// weightedTag is one traveler interest.
type weightedTag struct {
	tag    catalog.Tag
	weight float64
}

// interestWeights returns the traveler's interests with their weights,
// lower-cased, deduplicated and sorted by tag so sums are reproducible.
// Tags that only appear in InterestWeights count as interests.
func interestWeights(req *Request) []weightedTag {
	names := make([]string, 0, len(req.Interests)+len(req.InterestWeights))
	names = append(names, req.Interests...)
	for raw := range req.InterestWeights {
		names = append(names, raw)
	}

	seen := make(map[catalog.Tag]bool, len(names))
	out := make([]weightedTag, 0, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[catalog.Tag(name)] {
			continue
		}
		seen[catalog.Tag(name)] = true

		w, ok := req.InterestWeights[raw]
		if !ok {
			w, ok = req.InterestWeights[name]
		}
		if !ok {
			w = 1
		}
		out = append(out, weightedTag{tag: catalog.Tag(name), weight: math.Max(0, w)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].tag < out[j].tag })
	return out
}

// preferenceScore is the weight share of interests the destination matches,
// or a neutral 0.5 without interests.
func preferenceScore(d *catalog.Destination, interests []weightedTag) float64 {
	total, matched := 0.0, 0.0
	for _, in := range interests {
		total += in.weight
		if d.HasTag(in.tag) {
			matched += in.weight
		}
	}
	if total == 0 {
		return 0.5
	}
	return matched / total
}

func minMax(v, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	return clamp01((v - lo) / (hi - lo))
}

func ratio(v, best float64) float64 {
	if best <= 0 {
		return 0
	}
	return clamp01(v / best)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
