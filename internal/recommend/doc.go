// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package recommend ranks candidate destinations for a trip request.
//
// # Scoring
//
// Every destination receives five component scores in [0, 1]:
//
//   - value: base trip cost (cheapest allowed flight plus lodging for all
//     nights) against the budget. Within budget scores at least 0.7.
//   - seasonal: the destination's factor for the travel month relative to
//     the best destination that month.
//   - safety: min-max normalized safety index across the catalog.
//   - preference: weight share of the traveler's interests the destination
//     is tagged with, 0.5 when no interests are given.
//   - environmental: one minus the min-max normalized flight emissions.
//
// The composite score is the weighted sum of the components. Weights must
// sum to 1.0 unless Config.NormalizeWeights is set.
//
// # Ordering
//
// Rank sorts by composite score descending with ties broken by destination
// ID ascending, so identical inputs always produce identical rankings.
//
// # Usage
//
//	scorer, err := recommend.NewScorer(recommend.DefaultConfig(), catalog.New(), resolver, logger)
//	if err != nil {
//	    return err
//	}
//	ranked, err := scorer.Score(ctx, recommend.Request{
//	    StartDate: start,
//	    Nights:    5,
//	    Budget:    800,
//	    Style:     models.StyleStandard,
//	    Interests: []string{"foodie"},
//	})
package recommend
