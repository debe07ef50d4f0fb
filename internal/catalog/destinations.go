// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package catalog

// builtinDestinations is the fixed candidate set. Fares are return fares
// from Paris CDG in EUR; lodging is per night.
var builtinDestinations = []Destination{
	{
		ID: "barcelona", Name: "Barcelona", Country: "Spain", Airport: "BCN",
		Safety: 0.68, Cultural: 0.88, Walkability: 0.78, Accessibility: 0.72,
		CO2Kg:    260,
		Seasonal: [12]float64{0.88, 0.85, 0.92, 1.08, 1.25, 1.4, 1.5, 1.48, 1.18, 1.02, 1, 1.12},
		Tags:     []Tag{TagArchitecture, TagFoodie, TagNightlife, TagBeach},
		Fares:    FareTable{Economy: 110, Premium: 340, Business: 480},
		Lodging:  LodgingTable{Budget: 95, Mid: 180, Luxury: 265},
	},
	{
		ID: "budapest", Name: "Budapest", Country: "Hungary", Airport: "BUD",
		Safety: 0.69, Cultural: 0.82, Walkability: 0.8, Accessibility: 0.65,
		CO2Kg:    390,
		Seasonal: [12]float64{0.8, 0.78, 0.85, 1, 1.15, 1.3, 1.35, 1.32, 1.1, 0.98, 0.95, 1.05},
		Tags:     []Tag{TagBaths, TagArchitecture, TagMuseums, TagNightlife},
		Fares:    FareTable{Economy: 140, Premium: 380, Business: 650},
		Lodging:  LodgingTable{Budget: 70, Mid: 140, Luxury: 250},
	},
	{
		ID: "prague", Name: "Prague", Country: "Czech Republic", Airport: "PRG",
		Safety: 0.74, Cultural: 0.91, Walkability: 0.84, Accessibility: 0.68,
		CO2Kg:    350,
		Seasonal: [12]float64{0.75, 0.73, 0.8, 0.95, 1.12, 1.25, 1.3, 1.28, 1.05, 0.92, 0.9, 0.95},
		Tags:     []Tag{TagArchitecture, TagHistory, TagNightlife, TagMuseums},
		Fares:    FareTable{Economy: 120, Premium: 360, Business: 590},
		Lodging:  LodgingTable{Budget: 75, Mid: 145, Luxury: 265},
	},
	{
		ID: "amsterdam", Name: "Amsterdam", Country: "Netherlands", Airport: "AMS",
		Safety: 0.82, Cultural: 0.89, Walkability: 0.89, Accessibility: 0.85,
		CO2Kg:    180,
		Seasonal: [12]float64{0.85, 0.83, 0.9, 1.1, 1.22, 1.35, 1.4, 1.38, 1.15, 1, 0.95, 1.05},
		Tags:     []Tag{TagMuseums, TagNightlife, TagArchitecture, TagNature},
		Fares:    FareTable{Economy: 95, Premium: 310, Business: 520},
		Lodging:  LodgingTable{Budget: 135, Mid: 220, Luxury: 380},
	},
	{
		ID: "vienna", Name: "Vienna", Country: "Austria", Airport: "VIE",
		Safety: 0.85, Cultural: 0.93, Walkability: 0.82, Accessibility: 0.78,
		CO2Kg:    320,
		Seasonal: [12]float64{0.8, 0.78, 0.85, 1, 1.15, 1.28, 1.32, 1.3, 1.08, 0.95, 0.92, 1.08},
		Tags:     []Tag{TagArchitecture, TagMuseums, TagHistory, TagWellness},
		Fares:    FareTable{Economy: 125, Premium: 375, Business: 630},
		Lodging:  LodgingTable{Budget: 105, Mid: 185, Luxury: 320},
	},
	{
		ID: "rome", Name: "Rome", Country: "Italy", Airport: "FCO",
		Safety: 0.68, Cultural: 0.98, Walkability: 0.78, Accessibility: 0.65,
		CO2Kg:    380,
		Seasonal: [12]float64{0.88, 0.85, 0.95, 1.15, 1.3, 1.45, 1.55, 1.52, 1.25, 1.08, 1.02, 1.12},
		Tags:     []Tag{TagHistory, TagFoodie, TagArchitecture, TagMuseums},
		Fares:    FareTable{Economy: 115, Premium: 350, Business: 590},
		Lodging:  LodgingTable{Budget: 90, Mid: 175, Luxury: 310},
	},
	{
		ID: "berlin", Name: "Berlin", Country: "Germany", Airport: "BER",
		Safety: 0.78, Cultural: 0.85, Walkability: 0.81, Accessibility: 0.8,
		CO2Kg:    290,
		Seasonal: [12]float64{0.85, 0.83, 0.9, 1.05, 1.18, 1.28, 1.32, 1.3, 1.08, 0.95, 0.92, 1},
		Tags:     []Tag{TagMuseums, TagNightlife, TagHistory},
		Fares:    FareTable{Economy: 100, Premium: 320, Business: 450},
		Lodging:  LodgingTable{Budget: 110, Mid: 195, Luxury: 285},
	},
	{
		ID: "zurich", Name: "Zurich", Country: "Switzerland", Airport: "ZRH",
		Safety: 0.95, Cultural: 0.75, Walkability: 0.91, Accessibility: 0.9,
		CO2Kg:    240,
		Seasonal: [12]float64{0.85, 0.83, 0.88, 0.95, 1.1, 1.25, 1.35, 1.32, 1.08, 0.95, 0.92, 1.08},
		Tags:     []Tag{TagNature, TagHiking, TagLuxury, TagWellness},
		Fares:    FareTable{Economy: 155, Premium: 445, Business: 780},
		Lodging:  LodgingTable{Budget: 180, Mid: 295, Luxury: 485},
	},
	{
		ID: "krakow", Name: "Krakow", Country: "Poland", Airport: "KRK",
		Safety: 0.75, Cultural: 0.87, Walkability: 0.81, Accessibility: 0.62,
		CO2Kg:    410,
		Seasonal: [12]float64{0.75, 0.73, 0.78, 0.9, 1.05, 1.18, 1.22, 1.2, 1, 0.85, 0.88, 0.95},
		Tags:     []Tag{TagHistory, TagArchitecture, TagMuseums, TagFoodie},
		Fares:    FareTable{Economy: 150, Premium: 390, Business: 660},
		Lodging:  LodgingTable{Budget: 60, Mid: 115, Luxury: 205},
	},
	{
		ID: "copenhagen", Name: "Copenhagen", Country: "Denmark", Airport: "CPH",
		Safety: 0.82, Cultural: 0.83, Walkability: 0.84, Accessibility: 0.88,
		CO2Kg:    380,
		Seasonal: [12]float64{0.85, 0.83, 0.88, 0.98, 1.12, 1.25, 1.3, 1.28, 1.05, 0.92, 0.9, 0.95},
		Tags:     []Tag{TagArchitecture, TagFoodie, TagNature, TagWellness},
		Fares:    FareTable{Economy: 135, Premium: 405, Business: 685},
		Lodging:  LodgingTable{Budget: 140, Mid: 230, Luxury: 395},
	},
	{
		ID: "dubrovnik", Name: "Dubrovnik", Country: "Croatia", Airport: "DBV",
		Safety: 0.78, Cultural: 0.8, Walkability: 0.88, Accessibility: 0.58,
		CO2Kg:    450,
		Seasonal: [12]float64{0.75, 0.73, 0.8, 0.95, 1.15, 1.35, 1.5, 1.48, 1.2, 1, 0.85, 0.88},
		Tags:     []Tag{TagViews, TagHistory, TagBeach, TagNature},
		Fares:    FareTable{Economy: 165, Premium: 440, Business: 750},
		Lodging:  LodgingTable{Budget: 85, Mid: 165, Luxury: 295},
	},
	{
		ID: "edinburgh", Name: "Edinburgh", Country: "Scotland", Airport: "EDI",
		Safety: 0.8, Cultural: 0.9, Walkability: 0.83, Accessibility: 0.72,
		CO2Kg:    320,
		Seasonal: [12]float64{0.85, 0.83, 0.88, 1, 1.15, 1.3, 1.45, 1.42, 1.1, 0.95, 0.92, 1},
		Tags:     []Tag{TagHistory, TagNature, TagMuseums, TagHiking},
		Fares:    FareTable{Economy: 105, Premium: 325, Business: 550},
		Lodging:  LodgingTable{Budget: 110, Mid: 190, Luxury: 330},
	},
	{
		ID: "ljubljana", Name: "Ljubljana", Country: "Slovenia", Airport: "LJU",
		Safety: 0.8, Cultural: 0.7, Walkability: 0.86, Accessibility: 0.7,
		CO2Kg:    450,
		Seasonal: [12]float64{0.75, 0.73, 0.78, 0.9, 1.08, 1.22, 1.28, 1.25, 1.05, 0.9, 0.88, 0.95},
		Tags:     []Tag{TagNature, TagHiking, TagAdventure, TagViews},
		Fares:    FareTable{Economy: 185, Premium: 485, Business: 825},
		Lodging:  LodgingTable{Budget: 75, Mid: 135, Luxury: 235},
	},
	{
		ID: "athens", Name: "Athens", Country: "Greece", Airport: "ATH",
		Safety: 0.72, Cultural: 0.96, Walkability: 0.76, Accessibility: 0.6,
		CO2Kg:    420,
		Seasonal: [12]float64{0.8, 0.78, 0.85, 1, 1.18, 1.38, 1.5, 1.48, 1.2, 1.02, 0.88, 0.9},
		Tags:     []Tag{TagHistory, TagFoodie, TagViews, TagBeach},
		Fares:    FareTable{Economy: 130, Premium: 370, Business: 620},
		Lodging:  LodgingTable{Budget: 70, Mid: 140, Luxury: 260},
	},
	{
		ID: "stockholm", Name: "Stockholm", Country: "Sweden", Airport: "ARN",
		Safety: 0.84, Cultural: 0.86, Walkability: 0.85, Accessibility: 0.86,
		CO2Kg:    330,
		Seasonal: [12]float64{0.82, 0.8, 0.85, 0.95, 1.1, 1.28, 1.35, 1.3, 1.05, 0.92, 0.88, 0.98},
		Tags:     []Tag{TagMuseums, TagHistory, TagNature, TagArchitecture},
		Fares:    FareTable{Economy: 140, Premium: 410, Business: 690},
		Lodging:  LodgingTable{Budget: 130, Mid: 215, Luxury: 370},
	},
}
