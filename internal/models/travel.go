// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package models

// FlightClass is the cabin class of a flight.
type FlightClass string

const (
	FlightEconomy  FlightClass = "economy"
	FlightPremium  FlightClass = "premium"
	FlightBusiness FlightClass = "business"
)

// FlightClasses lists every flight class in ascending comfort order.
var FlightClasses = []FlightClass{FlightEconomy, FlightPremium, FlightBusiness}

// LodgingTier is the accommodation standard for a stay.
type LodgingTier string

const (
	LodgingBudget LodgingTier = "budget"
	LodgingMid    LodgingTier = "mid"
	LodgingLuxury LodgingTier = "luxury"
)

// LodgingTiers lists every lodging tier in ascending comfort order.
var LodgingTiers = []LodgingTier{LodgingBudget, LodgingMid, LodgingLuxury}

// Style is the traveler's overall spending posture. It constrains which
// flight classes and lodging tiers the optimizer may choose.
type Style string

const (
	StyleStandard Style = "standard"
	StylePremium  Style = "premium"
	StyleLuxury   Style = "luxury"
)

// Styles lists the recognized travel styles.
var Styles = []Style{StyleStandard, StylePremium, StyleLuxury}

// Valid reports whether s is a recognized style.
func (s Style) Valid() bool {
	for _, known := range Styles {
		if s == known {
			return true
		}
	}
	return false
}

// StyleOptions lists the flight classes and lodging tiers a style allows,
// cheapest first.
type StyleOptions struct {
	Flights []FlightClass
	Lodging []LodgingTier
}

var styleOptions = map[Style]StyleOptions{
	StyleStandard: {
		Flights: []FlightClass{FlightEconomy, FlightPremium},
		Lodging: []LodgingTier{LodgingBudget, LodgingMid},
	},
	StylePremium: {
		Flights: []FlightClass{FlightPremium, FlightBusiness},
		Lodging: []LodgingTier{LodgingMid, LodgingLuxury},
	},
	StyleLuxury: {
		Flights: []FlightClass{FlightBusiness},
		Lodging: []LodgingTier{LodgingLuxury},
	},
}

// Options returns the allowed flight classes and lodging tiers for s. An
// unknown style gets the standard options.
func (s Style) Options() StyleOptions {
	opts, ok := styleOptions[s]
	if !ok {
		opts = styleOptions[StyleStandard]
	}
	return StyleOptions{
		Flights: append([]FlightClass(nil), opts.Flights...),
		Lodging: append([]LodgingTier(nil), opts.Lodging...),
	}
}

// Value ranks a flight class: economy 1, premium 2, business 3.
func (c FlightClass) Value() int {
	switch c {
	case FlightEconomy:
		return 1
	case FlightPremium:
		return 2
	case FlightBusiness:
		return 3
	default:
		return 0
	}
}

// Value ranks a lodging tier: budget 1, mid 2, luxury 3.
func (t LodgingTier) Value() int {
	switch t {
	case LodgingBudget:
		return 1
	case LodgingMid:
		return 2
	case LodgingLuxury:
		return 3
	default:
		return 0
	}
}
