// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package catalog

import (
	"time"

	"github.com/antoineeeHao/itinera/internal/models"
)

// Tag is an interest tag shared by destinations, activities and traveler
// preferences.
type Tag string

const (
	TagFoodie       Tag = "foodie"
	TagMuseums      Tag = "museums"
	TagOutdoors     Tag = "outdoors"
	TagNightlife    Tag = "nightlife"
	TagHistory      Tag = "history"
	TagArchitecture Tag = "architecture"
	TagViews        Tag = "views"
	TagBeach        Tag = "beach"
	TagBaths        Tag = "baths"
	TagMarkets      Tag = "markets"
	TagShops        Tag = "shops"
	TagStepFree     Tag = "step-free"
	TagLowCO2       Tag = "low-CO2"
	TagHiking       Tag = "hiking"
	TagClimbing     Tag = "climbing"
	TagAdventure    Tag = "adventure"
	TagWellness     Tag = "wellness"
	TagLuxury       Tag = "luxury"
	TagNature       Tag = "nature"
)

// Tags is the full interest vocabulary in display order.
var Tags = []Tag{
	TagFoodie, TagMuseums, TagOutdoors, TagNightlife, TagHistory, TagArchitecture,
	TagViews, TagBeach, TagBaths, TagMarkets, TagShops, TagStepFree, TagLowCO2,
	TagHiking, TagClimbing, TagAdventure, TagWellness, TagLuxury, TagNature,
}

// KnownTag reports whether s names a tag in the vocabulary.
func KnownTag(s string) bool {
	for _, t := range Tags {
		if string(t) == s {
			return true
		}
	}
	return false
}

// FareTable holds base return-flight fares from the default origin, per class.
type FareTable struct {
	Economy  float64 `json:"economy"`
	Premium  float64 `json:"premium"`
	Business float64 `json:"business"`
}

// Fare returns the fare for class, or 0 for an unknown class.
func (f FareTable) Fare(class models.FlightClass) float64 {
	switch class {
	case models.FlightEconomy:
		return f.Economy
	case models.FlightPremium:
		return f.Premium
	case models.FlightBusiness:
		return f.Business
	}
	return 0
}

// LodgingTable holds nightly lodging rates per tier.
type LodgingTable struct {
	Budget float64 `json:"budget"`
	Mid    float64 `json:"mid"`
	Luxury float64 `json:"luxury"`
}

// Nightly returns the nightly rate for tier, or 0 for an unknown tier.
func (l LodgingTable) Nightly(tier models.LodgingTier) float64 {
	switch tier {
	case models.LodgingBudget:
		return l.Budget
	case models.LodgingMid:
		return l.Mid
	case models.LodgingLuxury:
		return l.Luxury
	}
	return 0
}

// Destination is one immutable catalog entry.
type Destination struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Airport string `json:"airport"`

	Safety        float64 `json:"safety"`
	Cultural      float64 `json:"cultural"`
	Walkability   float64 `json:"walkability"`
	Accessibility float64 `json:"accessibility"`

	// CO2Kg is the estimated return-flight emission from the default origin.
	CO2Kg float64 `json:"co2_kg"`

	// Seasonal holds the month multipliers, January first. Values above 1
	// mark high season: better conditions and higher fares.
	Seasonal [12]float64 `json:"seasonal"`

	Tags    []Tag        `json:"tags"`
	Fares   FareTable    `json:"fares"`
	Lodging LodgingTable `json:"lodging"`
}

// SeasonalFactor returns the multiplier for month m.
func (d *Destination) SeasonalFactor(m time.Month) float64 {
	if m < time.January || m > time.December {
		return 1.0
	}
	return d.Seasonal[m-1]
}

// HasTag reports whether the destination carries tag t.
func (d *Destination) HasTag(t Tag) bool {
	for _, own := range d.Tags {
		if own == t {
			return true
		}
	}
	return false
}

// Activity is an optional, individually priced thing to do at a destination.
type Activity struct {
	ID            string  `json:"id"`
	DestinationID string  `json:"destination_id"`
	Name          string  `json:"name"`
	Tags          []Tag   `json:"tags"`
	Hours         float64 `json:"hours"`
	Cost          float64 `json:"cost"`
}

// HasTag reports whether the activity carries tag t.
func (a *Activity) HasTag(t Tag) bool {
	for _, own := range a.Tags {
		if own == t {
			return true
		}
	}
	return false
}
