// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package cache

import (
	"testing"
	"time"
)

func TestExpiryHeap_PopOrder(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newExpiryHeap(0)

	h.upsert(Entry{Key: testKey("c"), ExpiresAt: base.Add(3 * time.Second)})
	h.upsert(Entry{Key: testKey("a"), ExpiresAt: base.Add(1 * time.Second)})
	h.upsert(Entry{Key: testKey("e"), ExpiresAt: base.Add(2 * time.Second)})
	h.upsert(Entry{Key: testKey("d"), ExpiresAt: base.Add(2 * time.Second)})

	want := []string{"a", "d", "e", "c"}
	for _, id := range want {
		e, ok := h.popMin()
		if !ok {
			t.Fatalf("popMin() empty, want %s", id)
		}
		if e.Key.ItemID != id {
			t.Errorf("popMin() = %s, want %s", e.Key.ItemID, id)
		}
	}
	if _, ok := h.popMin(); ok {
		t.Error("popMin() on empty heap ok = true")
	}
}

func TestExpiryHeap_UpsertReordersExisting(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newExpiryHeap(4)

	if !h.upsert(Entry{Key: testKey("a"), ExpiresAt: base}) {
		t.Error("upsert of new key returned false")
	}
	h.upsert(Entry{Key: testKey("b"), ExpiresAt: base.Add(time.Minute)})

	if h.upsert(Entry{Key: testKey("a"), ExpiresAt: base.Add(time.Hour)}) {
		t.Error("upsert of existing key returned true")
	}

	next, _ := h.peek()
	if next.Key.ItemID != "b" {
		t.Errorf("peek() = %s, want b after a was pushed back", next.Key.ItemID)
	}
	if h.len() != 2 {
		t.Errorf("len() = %d, want 2", h.len())
	}
}

func TestExpiryHeap_RemoveMiddle(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newExpiryHeap(8)

	for i, id := range []string{"a", "b", "c", "d", "e", "f"} {
		h.upsert(Entry{Key: testKey(id), ExpiresAt: base.Add(time.Duration(i) * time.Second)})
	}

	if _, ok := h.remove(testKey("c")); !ok {
		t.Fatal("remove(c) ok = false")
	}
	if _, ok := h.get(testKey("c")); ok {
		t.Error("c still present after remove")
	}

	want := []string{"a", "b", "d", "e", "f"}
	for _, id := range want {
		e, _ := h.popMin()
		if e.Key.ItemID != id {
			t.Errorf("popMin() = %s, want %s", e.Key.ItemID, id)
		}
	}
}
