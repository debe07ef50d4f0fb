// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package catalog holds the fixed set of candidate destinations and their
// activities.
//
// The catalog is pure value data: it is built once by New at process start,
// never mutated, and safe to share between goroutines without locking.
// Besides lookup it also serves as the static price table the fallback price
// model starts from (base fares per flight class, nightly rates per lodging
// tier, activity ticket prices) together with each destination's seasonal
// month multipliers.
package catalog
