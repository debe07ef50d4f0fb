// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package budget

import (
	"github.com/antoineeeHao/itinera/internal/models"
)

// Mode selects the activity selection algorithm.
type Mode string

const (
	// ModeGreedy fills the remaining budget by value density.
	ModeGreedy Mode = "greedy"

	// ModeExact solves the activity selection as a 0/1 knapsack over
	// whole-euro costs.
	ModeExact Mode = "exact"
)

// Schedule defaults.
const (
	DefaultHoursPerDay      = 6.0
	DefaultActivitiesPerDay = 3
)

// Config contains optimizer settings.
type Config struct {
	// Mode is the activity selection algorithm.
	// Default: greedy
	Mode Mode `json:"mode"`

	// HoursPerDay caps scheduled activity hours per day where possible.
	// Default: 6
	HoursPerDay float64 `json:"hours_per_day"`

	// ActivitiesPerDay caps scheduled activities per day where possible.
	// Default: 3
	ActivitiesPerDay int `json:"activities_per_day"`

	// Origin is the departure airport used to price flights.
	// Default: CDG
	Origin string `json:"origin"`
}

// DefaultConfig returns a configuration with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:             ModeGreedy,
		HoursPerDay:      DefaultHoursPerDay,
		ActivitiesPerDay: DefaultActivitiesPerDay,
		Origin:           "CDG",
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeGreedy, ModeExact:
	default:
		return models.NewConfigurationError("budget.mode", "must be %q or %q, got %q", ModeGreedy, ModeExact, c.Mode)
	}
	if c.HoursPerDay <= 0 {
		return models.NewConfigurationError("budget.hours_per_day", "must be positive, got %v", c.HoursPerDay)
	}
	if c.ActivitiesPerDay < 1 {
		return models.NewConfigurationError("budget.activities_per_day", "must be at least 1, got %d", c.ActivitiesPerDay)
	}
	if c.Origin == "" {
		return models.NewConfigurationError("pricing.origin", "must not be empty")
	}
	return nil
}
