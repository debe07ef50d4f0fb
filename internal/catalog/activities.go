// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package catalog

// builtinActivities lists the optional activities per destination ID.
var builtinActivities = map[string][]Activity{
	"barcelona": {
		{ID: "barcelona-sagrada-familia", Name: "Sagrada Família", Tags: []Tag{TagArchitecture}, Hours: 2, Cost: 26},
		{ID: "barcelona-gothic-quarter", Name: "Gothic Quarter", Tags: []Tag{TagHistory}, Hours: 2, Cost: 0},
		{ID: "barcelona-la-boqueria", Name: "La Boqueria", Tags: []Tag{TagFoodie}, Hours: 1.5, Cost: 12},
		{ID: "barcelona-park-guell", Name: "Park Güell", Tags: []Tag{TagViews, TagArchitecture}, Hours: 2, Cost: 10},
		{ID: "barcelona-barceloneta", Name: "Barceloneta", Tags: []Tag{TagBeach}, Hours: 2, Cost: 0},
		{ID: "barcelona-montjuic-hiking", Name: "Montjuïc Hiking", Tags: []Tag{TagHiking, TagViews, TagNature}, Hours: 4, Cost: 0},
		{ID: "barcelona-tibidabo-mountain", Name: "Tibidabo Mountain", Tags: []Tag{TagHiking, TagViews, TagAdventure}, Hours: 5, Cost: 15},
		{ID: "barcelona-costa-brava-day-trip", Name: "Costa Brava Day Trip", Tags: []Tag{TagNature, TagHiking, TagBeach}, Hours: 8, Cost: 45},
	},
	"budapest": {
		{ID: "budapest-szechenyi-baths", Name: "Széchenyi Baths", Tags: []Tag{TagBaths, TagWellness}, Hours: 2.5, Cost: 20},
		{ID: "budapest-buda-castle", Name: "Buda Castle", Tags: []Tag{TagHistory, TagViews}, Hours: 2, Cost: 10},
		{ID: "budapest-ruin-bars", Name: "Ruin Bars", Tags: []Tag{TagNightlife}, Hours: 2, Cost: 15},
		{ID: "budapest-parliament", Name: "Parliament", Tags: []Tag{TagArchitecture}, Hours: 1.5, Cost: 12},
		{ID: "budapest-danube-promenade", Name: "Danube Promenade", Tags: []Tag{TagViews}, Hours: 1.5, Cost: 0},
		{ID: "budapest-buda-hills-hiking", Name: "Buda Hills Hiking", Tags: []Tag{TagHiking, TagNature, TagViews}, Hours: 4, Cost: 5},
		{ID: "budapest-danube-bend-day-trip", Name: "Danube Bend Day Trip", Tags: []Tag{TagNature, TagHiking, TagViews}, Hours: 7, Cost: 35},
		{ID: "budapest-thermal-cave-baths", Name: "Thermal Cave Baths", Tags: []Tag{TagWellness, TagAdventure, TagNature}, Hours: 3, Cost: 25},
	},
	"prague": {
		{ID: "prague-charles-bridge", Name: "Charles Bridge", Tags: []Tag{TagHistory, TagViews}, Hours: 1.5, Cost: 0},
		{ID: "prague-prague-castle", Name: "Prague Castle", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 3, Cost: 15},
		{ID: "prague-old-town-square", Name: "Old Town Square", Tags: []Tag{TagArchitecture, TagHistory}, Hours: 2, Cost: 0},
		{ID: "prague-beer-tour", Name: "Beer Tour", Tags: []Tag{TagFoodie, TagNightlife}, Hours: 3, Cost: 25},
		{ID: "prague-vltava-river-cruise", Name: "Vltava River Cruise", Tags: []Tag{TagViews, TagNature}, Hours: 2, Cost: 18},
		{ID: "prague-petrin-hill-hike", Name: "Petrin Hill Hike", Tags: []Tag{TagHiking, TagViews, TagNature}, Hours: 3, Cost: 0},
		{ID: "prague-bohemian-switzerland-day-trip", Name: "Bohemian Switzerland Day Trip", Tags: []Tag{TagHiking, TagNature, TagAdventure}, Hours: 8, Cost: 45},
		{ID: "prague-spa-wellness", Name: "Spa & Wellness", Tags: []Tag{TagWellness, TagLuxury}, Hours: 4, Cost: 60},
	},
	"amsterdam": {
		{ID: "amsterdam-anne-frank-house", Name: "Anne Frank House", Tags: []Tag{TagHistory, TagMuseums}, Hours: 2, Cost: 16},
		{ID: "amsterdam-rijksmuseum", Name: "Rijksmuseum", Tags: []Tag{TagMuseums, TagArchitecture}, Hours: 3, Cost: 20},
		{ID: "amsterdam-canal-cruise", Name: "Canal Cruise", Tags: []Tag{TagViews, TagArchitecture}, Hours: 1.5, Cost: 18},
		{ID: "amsterdam-vondelpark", Name: "Vondelpark", Tags: []Tag{TagNature, TagOutdoors}, Hours: 2, Cost: 0},
		{ID: "amsterdam-red-light-district", Name: "Red Light District", Tags: []Tag{TagNightlife, TagHistory}, Hours: 1.5, Cost: 0},
		{ID: "amsterdam-keukenhof-gardens", Name: "Keukenhof Gardens", Tags: []Tag{TagNature, TagViews}, Hours: 4, Cost: 25},
		{ID: "amsterdam-zaanse-schans-cycling", Name: "Zaanse Schans Cycling", Tags: []Tag{TagNature, TagHiking, TagOutdoors}, Hours: 6, Cost: 35},
		{ID: "amsterdam-luxury-canal-tour", Name: "Luxury Canal Tour", Tags: []Tag{TagLuxury, TagViews}, Hours: 2.5, Cost: 85},
	},
	"vienna": {
		{ID: "vienna-schonbrunn-palace", Name: "Schönbrunn Palace", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 3, Cost: 22},
		{ID: "vienna-salzburg-day-trip", Name: "Salzburg Day Trip", Tags: []Tag{TagHistory, TagNature, TagHiking}, Hours: 10, Cost: 55},
		{ID: "vienna-vienna-woods-hiking", Name: "Vienna Woods Hiking", Tags: []Tag{TagHiking, TagNature}, Hours: 5, Cost: 8},
		{ID: "vienna-st-stephen-s-cathedral", Name: "St. Stephen's Cathedral", Tags: []Tag{TagArchitecture, TagHistory}, Hours: 1.5, Cost: 6},
		{ID: "vienna-belvedere-museum", Name: "Belvedere Museum", Tags: []Tag{TagMuseums, TagArchitecture}, Hours: 2.5, Cost: 18},
		{ID: "vienna-coffee-house-culture", Name: "Coffee House Culture", Tags: []Tag{TagFoodie, TagWellness}, Hours: 2, Cost: 12},
		{ID: "vienna-thermal-baths", Name: "Thermal Baths", Tags: []Tag{TagWellness, TagLuxury}, Hours: 3, Cost: 45},
		{ID: "vienna-private-opera-experience", Name: "Private Opera Experience", Tags: []Tag{TagLuxury, TagArchitecture}, Hours: 4, Cost: 150},
	},
	"rome": {
		{ID: "rome-colosseum", Name: "Colosseum", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2.5, Cost: 25},
		{ID: "rome-vatican-museums", Name: "Vatican Museums", Tags: []Tag{TagMuseums, TagHistory}, Hours: 4, Cost: 30},
		{ID: "rome-trevi-fountain", Name: "Trevi Fountain", Tags: []Tag{TagArchitecture, TagHistory}, Hours: 1, Cost: 0},
		{ID: "rome-trastevere-food-tour", Name: "Trastevere Food Tour", Tags: []Tag{TagFoodie}, Hours: 3, Cost: 35},
		{ID: "rome-roman-forum", Name: "Roman Forum", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2, Cost: 18},
		{ID: "rome-appian-way-cycling", Name: "Appian Way Cycling", Tags: []Tag{TagHiking, TagHistory, TagNature}, Hours: 4, Cost: 25},
		{ID: "rome-tuscany-day-trip", Name: "Tuscany Day Trip", Tags: []Tag{TagNature, TagHiking, TagFoodie}, Hours: 10, Cost: 85},
		{ID: "rome-private-villa-experience", Name: "Private Villa Experience", Tags: []Tag{TagLuxury, TagFoodie}, Hours: 6, Cost: 200},
	},
	"berlin": {
		{ID: "berlin-museum-island", Name: "Museum Island", Tags: []Tag{TagMuseums}, Hours: 3, Cost: 19},
		{ID: "berlin-brandenburg-gate", Name: "Brandenburg Gate", Tags: []Tag{TagHistory}, Hours: 1, Cost: 0},
		{ID: "berlin-east-side-gallery", Name: "East Side Gallery", Tags: []Tag{TagHistory, TagViews}, Hours: 1.5, Cost: 0},
		{ID: "berlin-tempelhofer-feld", Name: "Tempelhofer Feld", Tags: []Tag{TagOutdoors, TagNature}, Hours: 2, Cost: 0},
		{ID: "berlin-kreuzberg-food-tour", Name: "Kreuzberg Food Tour", Tags: []Tag{TagFoodie}, Hours: 2.5, Cost: 20},
		{ID: "berlin-grunewald-forest-hike", Name: "Grunewald Forest Hike", Tags: []Tag{TagHiking, TagNature}, Hours: 4, Cost: 0},
		{ID: "berlin-spreewald-day-trip", Name: "Spreewald Day Trip", Tags: []Tag{TagNature, TagAdventure, TagHiking}, Hours: 8, Cost: 35},
		{ID: "berlin-thermal-baths-spa", Name: "Thermal Baths & Spa", Tags: []Tag{TagWellness, TagLuxury}, Hours: 3, Cost: 35},
	},
	"zurich": {
		{ID: "zurich-lake-zurich", Name: "Lake Zurich", Tags: []Tag{TagNature, TagViews}, Hours: 2, Cost: 0},
		{ID: "zurich-uetliberg-hiking", Name: "Uetliberg Hiking", Tags: []Tag{TagHiking, TagNature, TagViews}, Hours: 4, Cost: 8},
		{ID: "zurich-swiss-national-park", Name: "Swiss National Park", Tags: []Tag{TagHiking, TagNature, TagAdventure}, Hours: 10, Cost: 65},
		{ID: "zurich-luxury-spa-day", Name: "Luxury Spa Day", Tags: []Tag{TagWellness, TagLuxury}, Hours: 6, Cost: 180},
		{ID: "zurich-swiss-chocolate-tour", Name: "Swiss Chocolate Tour", Tags: []Tag{TagFoodie}, Hours: 3, Cost: 45},
		{ID: "zurich-rhine-falls-trip", Name: "Rhine Falls Trip", Tags: []Tag{TagNature, TagViews}, Hours: 5, Cost: 35},
		{ID: "zurich-alpine-skiing", Name: "Alpine Skiing", Tags: []Tag{TagAdventure, TagNature}, Hours: 8, Cost: 85},
		{ID: "zurich-private-mountain-guide", Name: "Private Mountain Guide", Tags: []Tag{TagLuxury, TagHiking}, Hours: 8, Cost: 250},
	},
	"krakow": {
		{ID: "krakow-wawel-castle", Name: "Wawel Castle", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2.5, Cost: 12},
		{ID: "krakow-main-market-square", Name: "Main Market Square", Tags: []Tag{TagArchitecture, TagHistory}, Hours: 2, Cost: 0},
		{ID: "krakow-auschwitz-memorial", Name: "Auschwitz Memorial", Tags: []Tag{TagHistory, TagMuseums}, Hours: 7, Cost: 35},
		{ID: "krakow-salt-mine-tour", Name: "Salt Mine Tour", Tags: []Tag{TagHistory, TagAdventure}, Hours: 4, Cost: 28},
		{ID: "krakow-jewish-quarter", Name: "Jewish Quarter", Tags: []Tag{TagHistory, TagFoodie}, Hours: 3, Cost: 0},
		{ID: "krakow-tatra-mountains-hiking", Name: "Tatra Mountains Hiking", Tags: []Tag{TagHiking, TagNature, TagAdventure}, Hours: 8, Cost: 40},
		{ID: "krakow-zakopane-day-trip", Name: "Zakopane Day Trip", Tags: []Tag{TagHiking, TagNature}, Hours: 10, Cost: 50},
		{ID: "krakow-traditional-polish-feast", Name: "Traditional Polish Feast", Tags: []Tag{TagFoodie, TagLuxury}, Hours: 3, Cost: 65},
	},
	"copenhagen": {
		{ID: "copenhagen-nyhavn", Name: "Nyhavn", Tags: []Tag{TagArchitecture, TagViews}, Hours: 1.5, Cost: 0},
		{ID: "copenhagen-tivoli-gardens", Name: "Tivoli Gardens", Tags: []Tag{TagNature, TagOutdoors}, Hours: 3, Cost: 20},
		{ID: "copenhagen-rosenborg-castle", Name: "Rosenborg Castle", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2, Cost: 18},
		{ID: "copenhagen-food-market-tour", Name: "Food Market Tour", Tags: []Tag{TagFoodie}, Hours: 3, Cost: 40},
		{ID: "copenhagen-christiania", Name: "Christiania", Tags: []Tag{TagHistory, TagOutdoors}, Hours: 2, Cost: 0},
		{ID: "copenhagen-oresund-bridge-cycling", Name: "Øresund Bridge Cycling", Tags: []Tag{TagHiking, TagNature, TagViews}, Hours: 6, Cost: 35},
		{ID: "copenhagen-nordic-cuisine-experience", Name: "Nordic Cuisine Experience", Tags: []Tag{TagFoodie, TagLuxury}, Hours: 4, Cost: 120},
		{ID: "copenhagen-private-royal-tour", Name: "Private Royal Tour", Tags: []Tag{TagLuxury, TagHistory}, Hours: 5, Cost: 180},
	},
	"dubrovnik": {
		{ID: "dubrovnik-city-walls-walk", Name: "City Walls Walk", Tags: []Tag{TagHistory, TagViews}, Hours: 2, Cost: 35},
		{ID: "dubrovnik-old-town", Name: "Old Town", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2, Cost: 0},
		{ID: "dubrovnik-cable-car", Name: "Cable Car", Tags: []Tag{TagViews, TagNature}, Hours: 1.5, Cost: 25},
		{ID: "dubrovnik-island-hopping", Name: "Island Hopping", Tags: []Tag{TagBeach, TagNature}, Hours: 6, Cost: 55},
		{ID: "dubrovnik-game-of-thrones-tour", Name: "Game of Thrones Tour", Tags: []Tag{TagHistory, TagViews}, Hours: 3, Cost: 40},
		{ID: "dubrovnik-plitvice-lakes-day-trip", Name: "Plitvice Lakes Day Trip", Tags: []Tag{TagHiking, TagNature, TagViews}, Hours: 12, Cost: 75},
		{ID: "dubrovnik-adriatic-coastal-hiking", Name: "Adriatic Coastal Hiking", Tags: []Tag{TagHiking, TagNature, TagBeach}, Hours: 6, Cost: 35},
		{ID: "dubrovnik-private-yacht-experience", Name: "Private Yacht Experience", Tags: []Tag{TagLuxury, TagBeach}, Hours: 8, Cost: 300},
	},
	"edinburgh": {
		{ID: "edinburgh-edinburgh-castle", Name: "Edinburgh Castle", Tags: []Tag{TagHistory, TagViews}, Hours: 3, Cost: 20},
		{ID: "edinburgh-royal-mile", Name: "Royal Mile", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2, Cost: 0},
		{ID: "edinburgh-arthur-s-seat-hike", Name: "Arthur's Seat Hike", Tags: []Tag{TagHiking, TagNature, TagViews}, Hours: 3, Cost: 0},
		{ID: "edinburgh-whisky-tasting", Name: "Whisky Tasting", Tags: []Tag{TagFoodie}, Hours: 2, Cost: 35},
		{ID: "edinburgh-holyrood-palace", Name: "Holyrood Palace", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2, Cost: 18},
		{ID: "edinburgh-highlands-day-trip", Name: "Highlands Day Trip", Tags: []Tag{TagHiking, TagNature, TagAdventure}, Hours: 10, Cost: 65},
		{ID: "edinburgh-loch-lomond-hiking", Name: "Loch Lomond Hiking", Tags: []Tag{TagHiking, TagNature}, Hours: 8, Cost: 45},
		{ID: "edinburgh-castle-luxury-dining", Name: "Castle & Luxury Dining", Tags: []Tag{TagLuxury, TagHistory}, Hours: 5, Cost: 150},
	},
	"ljubljana": {
		{ID: "ljubljana-ljubljana-castle", Name: "Ljubljana Castle", Tags: []Tag{TagHistory, TagViews}, Hours: 2.5, Cost: 12},
		{ID: "ljubljana-tivoli-park", Name: "Tivoli Park", Tags: []Tag{TagNature}, Hours: 2, Cost: 0},
		{ID: "ljubljana-dragon-bridge", Name: "Dragon Bridge", Tags: []Tag{TagArchitecture}, Hours: 1, Cost: 0},
		{ID: "ljubljana-lake-bled-day-trip", Name: "Lake Bled Day Trip", Tags: []Tag{TagNature, TagViews, TagHiking}, Hours: 8, Cost: 35},
		{ID: "ljubljana-triglav-national-park", Name: "Triglav National Park", Tags: []Tag{TagHiking, TagAdventure, TagNature}, Hours: 10, Cost: 55},
		{ID: "ljubljana-postojna-cave", Name: "Postojna Cave", Tags: []Tag{TagAdventure, TagNature}, Hours: 5, Cost: 28},
		{ID: "ljubljana-vipava-valley-wine", Name: "Vipava Valley Wine", Tags: []Tag{TagFoodie, TagNature}, Hours: 6, Cost: 65},
		{ID: "ljubljana-alpine-climbing", Name: "Alpine Climbing", Tags: []Tag{TagClimbing, TagAdventure}, Hours: 8, Cost: 95},
	},
	"athens": {
		{ID: "athens-acropolis", Name: "Acropolis", Tags: []Tag{TagHistory, TagViews}, Hours: 2.5, Cost: 20},
		{ID: "athens-acropolis-museum", Name: "Acropolis Museum", Tags: []Tag{TagMuseums}, Hours: 2, Cost: 12},
		{ID: "athens-plaka", Name: "Plaka", Tags: []Tag{TagFoodie, TagShops}, Hours: 2, Cost: 0},
		{ID: "athens-lycabettus-hill", Name: "Lycabettus Hill", Tags: []Tag{TagViews, TagHiking}, Hours: 2, Cost: 0},
		{ID: "athens-central-market", Name: "Central Market", Tags: []Tag{TagFoodie}, Hours: 1.5, Cost: 10},
		{ID: "athens-mount-hymettus-hike", Name: "Mount Hymettus Hike", Tags: []Tag{TagHiking, TagNature, TagViews}, Hours: 5, Cost: 0},
		{ID: "athens-aegina-island-day-trip", Name: "Aegina Island Day Trip", Tags: []Tag{TagNature, TagHiking, TagBeach}, Hours: 8, Cost: 40},
		{ID: "athens-national-gardens", Name: "National Gardens", Tags: []Tag{TagNature, TagWellness}, Hours: 2, Cost: 0},
	},
	"stockholm": {
		{ID: "stockholm-gamla-stan", Name: "Gamla Stan", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2, Cost: 0},
		{ID: "stockholm-vasa-museum", Name: "Vasa Museum", Tags: []Tag{TagMuseums, TagHistory}, Hours: 2, Cost: 20},
		{ID: "stockholm-abba-museum", Name: "ABBA Museum", Tags: []Tag{TagMuseums}, Hours: 2, Cost: 28},
		{ID: "stockholm-archipelago-tour", Name: "Archipelago Tour", Tags: []Tag{TagNature, TagViews}, Hours: 6, Cost: 45},
		{ID: "stockholm-royal-palace", Name: "Royal Palace", Tags: []Tag{TagHistory, TagArchitecture}, Hours: 2, Cost: 15},
		{ID: "stockholm-hiking-sormland", Name: "Hiking Sörmland", Tags: []Tag{TagHiking, TagNature}, Hours: 7, Cost: 20},
		{ID: "stockholm-nordic-spa-experience", Name: "Nordic Spa Experience", Tags: []Tag{TagWellness, TagLuxury}, Hours: 4, Cost: 80},
		{ID: "stockholm-ice-hotel-experience", Name: "Ice Hotel Experience", Tags: []Tag{TagLuxury, TagAdventure}, Hours: 12, Cost: 250},
	},
}
