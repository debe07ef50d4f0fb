// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package recommend

import (
	"math"

	"github.com/antoineeeHao/itinera/internal/models"
)

// Component names used in score breakdowns and weight maps.
const (
	ComponentValue         = "value"
	ComponentSeasonal      = "seasonal"
	ComponentSafety        = "safety"
	ComponentPreference    = "preference"
	ComponentEnvironmental = "environmental"
)

// weightTolerance is how far the weight sum may drift from 1.0.
const weightTolerance = 1e-6

// Weights defines the relative contribution of each score component.
type Weights struct {
	// Value rewards destinations whose base trip cost fits the budget.
	Value float64 `json:"value" koanf:"value"`

	// Seasonal rewards destinations in their best months.
	Seasonal float64 `json:"seasonal" koanf:"seasonal"`

	// Safety rewards safer destinations.
	Safety float64 `json:"safety" koanf:"safety"`

	// Preference rewards destinations matching the traveler's interests.
	Preference float64 `json:"preference" koanf:"preference"`

	// Environmental rewards lower flight emissions.
	Environmental float64 `json:"environmental" koanf:"environmental"`
}

// DefaultWeights returns the production weights.
func DefaultWeights() Weights {
	return Weights{
		Value:         0.35,
		Seasonal:      0.15,
		Safety:        0.15,
		Preference:    0.25,
		Environmental: 0.10,
	}
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	return w.Value + w.Seasonal + w.Safety + w.Preference + w.Environmental
}

// Normalize returns a copy with weights rescaled to sum to 1.0. All-zero
// weights become equal weights.
func (w Weights) Normalize() Weights {
	sum := w.Sum()
	if sum == 0 {
		const equal = 1.0 / 5.0
		return Weights{Value: equal, Seasonal: equal, Safety: equal, Preference: equal, Environmental: equal}
	}
	return Weights{
		Value:         w.Value / sum,
		Seasonal:      w.Seasonal / sum,
		Safety:        w.Safety / sum,
		Preference:    w.Preference / sum,
		Environmental: w.Environmental / sum,
	}
}

// ToMap returns the weights keyed by component name.
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		ComponentValue:         w.Value,
		ComponentSeasonal:      w.Seasonal,
		ComponentSafety:        w.Safety,
		ComponentPreference:    w.Preference,
		ComponentEnvironmental: w.Environmental,
	}
}

// Validate rejects negative weights and weights that do not sum to 1.0.
func (w Weights) Validate() error {
	for name, v := range w.ToMap() {
		if v < 0 || math.IsNaN(v) {
			return models.NewConfigurationError("scoring.weights."+name, "must be non-negative, got %v", v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return models.NewConfigurationError("scoring.weights", "must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// Config contains scorer settings.
type Config struct {
	// Weights of the score components.
	Weights Weights `json:"weights"`

	// NormalizeWeights rescales weights that do not sum to 1.0 instead of
	// rejecting them.
	NormalizeWeights bool `json:"normalize_weights"`

	// Origin is the departure airport used to price flights.
	// Default: CDG
	Origin string `json:"origin"`

	// Concurrency bounds parallel price resolutions while scoring.
	// Default: 4
	Concurrency int `json:"concurrency"`
}

// DefaultConfig returns a configuration with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights:     DefaultWeights(),
		Origin:      "CDG",
		Concurrency: 4,
	}
}

// Validate checks the configuration. With NormalizeWeights set, weights
// only need to be non-negative and not all zero.
func (c *Config) Validate() error {
	if c.NormalizeWeights {
		for name, v := range c.Weights.ToMap() {
			if v < 0 || math.IsNaN(v) {
				return models.NewConfigurationError("scoring.weights."+name, "must be non-negative, got %v", v)
			}
		}
		if c.Weights.Sum() == 0 {
			return models.NewConfigurationError("scoring.weights", "at least one weight must be positive")
		}
	} else if err := c.Weights.Validate(); err != nil {
		return err
	}

	if c.Origin == "" {
		return models.NewConfigurationError("pricing.origin", "must not be empty")
	}
	if c.Concurrency < 0 {
		return models.NewConfigurationError("scoring.concurrency", "must be non-negative, got %d", c.Concurrency)
	}
	return nil
}

// effectiveWeights returns the weights the scorer applies.
func (c *Config) effectiveWeights() Weights {
	if c.NormalizeWeights {
		return c.Weights.Normalize()
	}
	return c.Weights
}
