// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package cache

// expiryHeap is a min-heap of cache entries ordered by expiry, earliest
// first, with ties broken by key string so eviction order never depends on
// insertion history. A parallel map gives O(1) lookup by key.
//
// expiryHeap does no locking; PriceCache holds its mutex around every call.
type expiryHeap struct {
	items []*heapItem
	byKey map[Key]*heapItem
}

type heapItem struct {
	entry Entry
	index int // position in items, kept current by swap
}

func newExpiryHeap(capacity int) *expiryHeap {
	return &expiryHeap{
		items: make([]*heapItem, 0, capacity),
		byKey: make(map[Key]*heapItem, capacity),
	}
}

func (h *expiryHeap) len() int {
	return len(h.items)
}

func (h *expiryHeap) get(key Key) (Entry, bool) {
	item, ok := h.byKey[key]
	if !ok {
		return Entry{}, false
	}
	return item.entry, true
}

// upsert inserts e, or replaces the entry with the same key and restores
// heap order. It reports whether the key was new.
func (h *expiryHeap) upsert(e Entry) bool {
	if existing, ok := h.byKey[e.Key]; ok {
		existing.entry = e
		h.fix(existing.index)
		return false
	}

	item := &heapItem{entry: e, index: len(h.items)}
	h.items = append(h.items, item)
	h.byKey[e.Key] = item
	h.bubbleUp(item.index)
	return true
}

// peek returns the entry that would be evicted next.
func (h *expiryHeap) peek() (Entry, bool) {
	if len(h.items) == 0 {
		return Entry{}, false
	}
	return h.items[0].entry, true
}

// popMin removes and returns the entry with the earliest expiry.
func (h *expiryHeap) popMin() (Entry, bool) {
	if len(h.items) == 0 {
		return Entry{}, false
	}
	return h.removeAt(0), true
}

func (h *expiryHeap) remove(key Key) (Entry, bool) {
	item, ok := h.byKey[key]
	if !ok {
		return Entry{}, false
	}
	return h.removeAt(item.index), true
}

func (h *expiryHeap) clear() {
	h.items = h.items[:0]
	h.byKey = make(map[Key]*heapItem)
}

func (h *expiryHeap) removeAt(i int) Entry {
	n := len(h.items) - 1
	item := h.items[i]
	delete(h.byKey, item.entry.Key)

	if i == n {
		h.items[n] = nil
		h.items = h.items[:n]
		return item.entry
	}

	h.items[i] = h.items[n]
	h.items[i].index = i
	h.items[n] = nil
	h.items = h.items[:n]
	h.fix(i)

	return item.entry
}

func (h *expiryHeap) fix(i int) {
	if h.bubbleUp(i) {
		return
	}
	h.bubbleDown(i)
}

// less orders by expiry, then by key string.
func (h *expiryHeap) less(i, j int) bool {
	a, b := h.items[i].entry, h.items[j].entry
	if !a.ExpiresAt.Equal(b.ExpiresAt) {
		return a.ExpiresAt.Before(b.ExpiresAt)
	}
	return a.Key.String() < b.Key.String()
}

func (h *expiryHeap) bubbleUp(i int) bool {
	moved := false
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
		moved = true
	}
	return moved
}

func (h *expiryHeap) bubbleDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}

		h.swap(i, smallest)
		i = smallest
	}
}

func (h *expiryHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}
