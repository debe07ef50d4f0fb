// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package pricing resolves prices for flights, lodging and activities.
//
// A Resolver tries, in order, the price cache, the live provider through
// the upstream retry executor, and finally a deterministic estimate built
// from the catalog's reference prices. It always returns a quote; the
// Source field says which path produced it.
package pricing
