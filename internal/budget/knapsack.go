// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package budget

import (
	"sort"
)

// candidate is a priced optional activity.
type candidate struct {
	id    string
	index int
	cost  int64 // cents
	value float64
}

// selectGreedy takes activities by value density, free ones first, ties by
// ID, while they fit in the remaining cents.
func selectGreedy(cands []candidate, remaining int64) []candidate {
	sorted := append([]candidate(nil), cands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if (a.cost == 0) != (b.cost == 0) {
			return a.cost == 0
		}
		if a.cost > 0 {
			da, db := a.value/float64(a.cost), b.value/float64(b.cost)
			if da != db {
				return da > db
			}
		} else if a.value != b.value {
			return a.value > b.value
		}
		return a.id < b.id
	})

	var picked []candidate
	for _, c := range sorted {
		if c.cost <= remaining {
			picked = append(picked, c)
			remaining -= c.cost
		}
	}
	return picked
}

// selectExact solves the 0/1 knapsack over whole euros. Costs round up and
// the capacity rounds down, so the chosen set always fits in remaining.
// Picks come back ordered by value descending, ties by ID.
func selectExact(cands []candidate, remaining int64) []candidate {
	sorted := append([]candidate(nil), cands...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].id < sorted[j].id })

	capacity := remaining / 100
	var total int64
	weights := make([]int64, len(sorted))
	for i, c := range sorted {
		weights[i] = (c.cost + 99) / 100
		total += weights[i]
	}
	if capacity > total {
		capacity = total
	}
	if capacity < 0 {
		capacity = 0
	}

	best := make([]float64, capacity+1)
	take := make([][]bool, len(sorted))
	for i := range sorted {
		take[i] = make([]bool, capacity+1)
		w := weights[i]
		for c := capacity; c >= w; c-- {
			if v := best[c-w] + sorted[i].value; v > best[c] {
				best[c] = v
				take[i][c] = true
			}
		}
	}

	var picked []candidate
	c := capacity
	for i := len(sorted) - 1; i >= 0; i-- {
		if take[i][c] {
			picked = append(picked, sorted[i])
			c -= weights[i]
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		if picked[i].value != picked[j].value {
			return picked[i].value > picked[j].value
		}
		return picked[i].id < picked[j].id
	})
	return picked
}
