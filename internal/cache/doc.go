// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

/*
Package cache provides the bounded, TTL-based price cache.

Live quotes from the upstream provider are expensive and rate limited, so
every successful live quote is kept here for a configurable time-to-live.
Fallback estimates are never cached.

# Overview

The cache provides:
  - Keys made of item, travel date and travel class
  - Absolute expiry per entry; an expired entry is never returned
  - A fixed capacity with deterministic eviction (earliest expiry first,
    then smallest key)
  - A single mutex around all state
  - Optional write-through persistence to BadgerDB (DiskStore)

# Usage Example

	c := cache.New(cache.Options{TTL: time.Hour, Capacity: 1000})

	key := cache.NewKey("CDG-BCN", date, "economy")
	c.Put(key, quote, 0)

	if q, ok := c.Get(key); ok {
	    // q.Amount is still within its TTL
	}

# Persistence

	store, err := cache.OpenDiskStore("/data/prices")
	if err != nil {
	    return err
	}
	c := cache.New(cache.Options{Store: store})
	restored, err := c.Restore()

Badger records carry their own TTL, so a restart never resurrects a quote
past its expiry.
*/
package cache
