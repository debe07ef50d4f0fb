// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package validation validates API request structs with
// go-playground/validator and turns failures into per-field errors.
//
// Besides the built-in tags it registers the travel tags style, interest,
// iata and isodate. Error field names follow the struct's json tags so
// clients see the names they sent.
package validation
