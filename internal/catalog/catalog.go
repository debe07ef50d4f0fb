// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/antoineeeHao/itinera/internal/models"
)

// DefaultOrigin is the departure airport the fare tables are quoted from.
const DefaultOrigin = "CDG"

// Fallback rows for items the catalog has no entry for.
var (
	defaultFares   = FareTable{Economy: 150, Premium: 400, Business: 650}
	defaultLodging = LodgingTable{Budget: 100, Mid: 180, Luxury: 320}
)

// activityMultiplier scales activity ticket prices by travel style. The
// second value applies to luxury-tagged activities.
var activityMultiplier = map[models.Style][2]float64{
	models.StyleStandard: {1.0, 1.0},
	models.StylePremium:  {1.3, 1.5},
	models.StyleLuxury:   {1.6, 2.0},
}

// Catalog is the read-only destination and activity catalog.
type Catalog struct {
	destinations []Destination
	byID         map[string]int
	byAirport    map[string]int
	activities   map[string][]Activity
	activityByID map[string]Activity
}

// New builds the built-in catalog of 15 destinations.
func New() *Catalog {
	return build(builtinDestinations, builtinActivities)
}

func build(dests []Destination, acts map[string][]Activity) *Catalog {
	c := &Catalog{
		destinations: make([]Destination, len(dests)),
		byID:         make(map[string]int, len(dests)),
		byAirport:    make(map[string]int, len(dests)),
		activities:   make(map[string][]Activity, len(acts)),
		activityByID: make(map[string]Activity),
	}

	copy(c.destinations, dests)
	sort.SliceStable(c.destinations, func(i, j int) bool {
		return c.destinations[i].ID < c.destinations[j].ID
	})
	for i := range c.destinations {
		c.byID[c.destinations[i].ID] = i
		c.byAirport[c.destinations[i].Airport] = i
	}

	for destID, list := range acts {
		owned := make([]Activity, len(list))
		for i, a := range list {
			a.DestinationID = destID
			owned[i] = a
			c.activityByID[a.ID] = a
		}
		c.activities[destID] = owned
	}
	return c
}

// Len returns the number of destinations.
func (c *Catalog) Len() int {
	return len(c.destinations)
}

// Destinations returns every destination ordered by ID.
func (c *Catalog) Destinations() []Destination {
	out := make([]Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// Destination looks a destination up by ID.
func (c *Catalog) Destination(id string) (Destination, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Destination{}, false
	}
	return c.destinations[i], true
}

// Activities returns the activities of a destination in catalog order.
func (c *Catalog) Activities(destinationID string) []Activity {
	list := c.activities[destinationID]
	out := make([]Activity, len(list))
	copy(out, list)
	return out
}

// Activity looks an activity up by ID.
func (c *Catalog) Activity(id string) (Activity, bool) {
	a, ok := c.activityByID[id]
	return a, ok
}

// FlightItem is the priceable return flight from origin to d.
func FlightItem(origin string, d *Destination) models.Item {
	return models.Item{
		ID:            origin + "-" + d.Airport,
		Kind:          models.ItemFlight,
		DestinationID: d.ID,
	}
}

// LodgingItem is the priceable nightly stay at d.
func LodgingItem(d *Destination) models.Item {
	return models.Item{
		ID:            "lodging:" + d.ID,
		Kind:          models.ItemLodging,
		DestinationID: d.ID,
	}
}

// ActivityItem is the priceable ticket for a.
func ActivityItem(a *Activity) models.Item {
	return models.Item{
		ID:            a.ID,
		Kind:          models.ItemActivity,
		DestinationID: a.DestinationID,
	}
}

// ParseItem turns an item ID back into an Item: "lodging:<destination>"
// for lodging, "<origin>-<airport>" for flights and an activity ID
// otherwise. It reports false for IDs naming nothing in the catalog.
func (c *Catalog) ParseItem(id string) (models.Item, bool) {
	if destID, ok := strings.CutPrefix(id, "lodging:"); ok {
		i, found := c.byID[destID]
		if !found {
			return models.Item{}, false
		}
		return LodgingItem(&c.destinations[i]), true
	}
	if a, ok := c.activityByID[id]; ok {
		return ActivityItem(&a), true
	}
	origin, airport, ok := strings.Cut(id, "-")
	if !ok || len(origin) != 3 {
		return models.Item{}, false
	}
	i, found := c.byAirport[airport]
	if !found {
		return models.Item{}, false
	}
	return FlightItem(origin, &c.destinations[i]), true
}

// BasePrice returns the static table price for item in class before any
// seasonal or fluctuation adjustment. Flights use the flight class, lodging
// the lodging tier and activities the travel style as class. Unknown
// destinations fall back to the default rows; unknown classes price at 0.
func (c *Catalog) BasePrice(item models.Item, class string) float64 {
	switch item.Kind {
	case models.ItemFlight:
		fares := defaultFares
		if d, ok := c.lookup(item); ok {
			fares = d.Fares
		}
		return fares.Fare(models.FlightClass(class))

	case models.ItemLodging:
		lodging := defaultLodging
		if d, ok := c.lookup(item); ok {
			lodging = d.Lodging
		}
		return lodging.Nightly(models.LodgingTier(class))

	case models.ItemActivity:
		a, ok := c.activityByID[item.ID]
		if !ok {
			return 0
		}
		mult, ok := activityMultiplier[models.Style(class)]
		if !ok {
			mult = activityMultiplier[models.StyleStandard]
		}
		if a.HasTag(TagLuxury) {
			return a.Cost * mult[1]
		}
		return a.Cost * mult[0]
	}
	return 0
}

// SeasonalFactor returns the month multiplier applied to item prices.
// Only flights are seasonal; lodging and activities price flat.
func (c *Catalog) SeasonalFactor(item models.Item, month time.Month) float64 {
	if item.Kind != models.ItemFlight {
		return 1.0
	}
	d, ok := c.lookup(item)
	if !ok {
		return 1.0
	}
	return d.SeasonalFactor(month)
}

// lookup resolves the destination an item belongs to, by destination ID or,
// for flight routes like "CDG-BCN", by the arrival airport.
func (c *Catalog) lookup(item models.Item) (*Destination, bool) {
	if i, ok := c.byID[item.DestinationID]; ok {
		return &c.destinations[i], true
	}
	if item.Kind == models.ItemFlight {
		if idx := strings.LastIndex(item.ID, "-"); idx >= 0 {
			if i, ok := c.byAirport[item.ID[idx+1:]]; ok {
				return &c.destinations[i], true
			}
		}
	}
	return nil, false
}
