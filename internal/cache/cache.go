// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package cache

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/antoineeeHao/itinera/internal/logging"
	"github.com/antoineeeHao/itinera/internal/metrics"
	"github.com/antoineeeHao/itinera/internal/models"
)

const (
	// DefaultTTL is how long a live quote stays authoritative.
	DefaultTTL = time.Hour

	// DefaultCapacity bounds the number of cached quotes.
	DefaultCapacity = 1000
)

// Key identifies a cached quote: the route or item, the travel date and the
// travel class.
type Key struct {
	ItemID string `json:"item_id"`
	Date   string `json:"date"`
	Class  string `json:"class"`
}

// NewKey builds a Key with the date truncated to the calendar day.
func NewKey(itemID string, date time.Time, class string) Key {
	return Key{ItemID: itemID, Date: models.DateKey(date), Class: class}
}

// String renders the key as "item|date|class".
func (k Key) String() string {
	return k.ItemID + "|" + k.Date + "|" + k.Class
}

// Entry is a cached quote with its absolute expiry.
type Entry struct {
	Key       Key               `json:"key"`
	Quote     models.PriceQuote `json:"quote"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// Expired reports whether the entry is past its expiry at now.
func (e *Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// Store persists cache entries between process runs. Implementations must
// be safe for concurrent use.
type Store interface {
	Save(e Entry) error
	Delete(key Key) error
	Load() ([]Entry, error)
}

// Stats tracks cache performance.
type Stats struct {
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Evictions   int64 `json:"evictions"`
	Expirations int64 `json:"expirations"`
	Entries     int   `json:"entries"`
}

// HitRate returns hits as a percentage of lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Options configures a PriceCache.
type Options struct {
	// TTL is applied by Put when no explicit TTL is given.
	// Default: 1h
	TTL time.Duration

	// Capacity is the maximum number of entries.
	// Default: 1000
	Capacity int

	// Store optionally persists entries. Writes are best effort: a failing
	// store never fails a cache operation.
	Store Store

	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// PriceCache is a bounded, TTL-based store of price quotes.
//
// Eviction policy: when a new key is inserted at capacity, the entry with
// the earliest expiry is evicted; equal expiries evict the smallest key
// string first. With a uniform TTL this is insertion order.
//
// Thread Safety:
//   - A single mutex guards every read and write, so no partial update is
//     ever observable
//   - Expired entries are never returned; Get removes them on sight
//   - There is no sweeper goroutine; the supervised maintenance service
//     calls PurgeExpired periodically
type PriceCache struct {
	mu       sync.Mutex
	entries  *expiryHeap
	ttl      time.Duration
	capacity int
	store    Store
	now      func() time.Time
	stats    Stats
	logger   zerolog.Logger
}

// New creates an empty PriceCache. Zero option values take their defaults.
//
// Example:
//
//	c := cache.New(cache.Options{TTL: time.Hour, Capacity: 1000})
//	c.Put(cache.NewKey("CDG-BCN", date, "economy"), quote, 0)
//	if q, ok := c.Get(key); ok {
//	    // Use cached quote
//	}
func New(opts Options) *PriceCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &PriceCache{
		entries:  newExpiryHeap(opts.Capacity),
		ttl:      opts.TTL,
		capacity: opts.Capacity,
		store:    opts.Store,
		now:      opts.Clock,
		logger:   logging.WithComponent("price_cache"),
	}
}

// TTL returns the default time-to-live.
func (c *PriceCache) TTL() time.Duration {
	return c.ttl
}

// Capacity returns the maximum number of entries.
func (c *PriceCache) Capacity() int {
	return c.capacity
}

// Get returns the quote cached under key.
//
// Returns (quote, true) only when the entry exists and its expiry has not
// passed. An expired entry is removed and counted as a miss.
func (c *PriceCache) Get(key Key) (models.PriceQuote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries.get(key)
	if !ok {
		c.stats.Misses++
		metrics.PriceCacheMisses.Inc()
		return models.PriceQuote{}, false
	}

	if entry.Expired(c.now()) {
		c.entries.remove(key)
		c.stats.Misses++
		c.stats.Expirations++
		metrics.PriceCacheMisses.Inc()
		metrics.PriceCacheEvictions.WithLabelValues("expired").Inc()
		metrics.PriceCacheEntries.Set(float64(c.entries.len()))
		return models.PriceQuote{}, false
	}

	c.stats.Hits++
	metrics.PriceCacheHits.Inc()
	return entry.Quote, true
}

// Put stores quote under key for ttl. A ttl of zero or less uses the
// configured default.
func (c *PriceCache) Put(key Key, quote models.PriceQuote, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}
	c.PutUntil(key, quote, c.now().Add(ttl))
}

// PutUntil stores quote under key with an absolute expiry. Overwriting an
// existing key refreshes both quote and expiry.
func (c *PriceCache) PutUntil(key Key, quote models.PriceQuote, expiresAt time.Time) {
	entry := Entry{Key: key, Quote: quote, ExpiresAt: expiresAt}

	evicted, didEvict := c.insert(entry)

	if c.store == nil {
		return
	}
	if didEvict {
		if err := c.store.Delete(evicted.Key); err != nil {
			c.logger.Warn().Err(err).Str("key", evicted.Key.String()).Msg("Failed to delete evicted quote from store")
		}
	}
	if err := c.store.Save(entry); err != nil {
		c.logger.Warn().Err(err).Str("key", key.String()).Msg("Failed to persist quote")
	}
}

// insert performs the in-memory write under the lock and reports the entry
// evicted to make room, if any.
func (c *PriceCache) insert(entry Entry) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		evicted  Entry
		didEvict bool
	)
	if _, exists := c.entries.get(entry.Key); !exists && c.entries.len() >= c.capacity {
		evicted, didEvict = c.entries.popMin()
		if didEvict {
			c.stats.Evictions++
			metrics.PriceCacheEvictions.WithLabelValues("capacity").Inc()
		}
	}

	c.entries.upsert(entry)
	metrics.PriceCacheEntries.Set(float64(c.entries.len()))
	return evicted, didEvict
}

// Delete removes key from the cache and the store.
func (c *PriceCache) Delete(key Key) {
	c.mu.Lock()
	c.entries.remove(key)
	metrics.PriceCacheEntries.Set(float64(c.entries.len()))
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Delete(key); err != nil {
			c.logger.Warn().Err(err).Str("key", key.String()).Msg("Failed to delete quote from store")
		}
	}
}

// Clear removes every entry from memory. Persisted entries are left to
// expire through the store's own TTL.
func (c *PriceCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.clear()
	metrics.PriceCacheEntries.Set(0)
}

// PurgeExpired removes every expired entry and returns how many it removed.
func (c *PriceCache) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	purged := 0
	for {
		next, ok := c.entries.peek()
		if !ok || !next.Expired(now) {
			break
		}
		c.entries.popMin()
		purged++
	}

	if purged > 0 {
		c.stats.Expirations += int64(purged)
		metrics.PriceCacheEvictions.WithLabelValues("expired").Add(float64(purged))
		metrics.PriceCacheEntries.Set(float64(c.entries.len()))
	}
	return purged
}

// Len returns the number of entries, expired ones included until they are
// looked up or purged.
func (c *PriceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.len()
}

// Stats returns a snapshot of the cache statistics.
func (c *PriceCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Entries = c.entries.len()
	return s
}

// Restore loads persisted entries from the store, skipping expired ones.
// When the store holds more entries than fit, the ones expiring last are
// kept. It returns the number of entries restored.
func (c *PriceCache) Restore() (int, error) {
	if c.store == nil {
		return 0, nil
	}

	entries, err := c.store.Load()
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	restored := 0
	for i := range entries {
		if entries[i].Expired(now) {
			continue
		}
		if _, exists := c.entries.get(entries[i].Key); !exists && c.entries.len() >= c.capacity {
			oldest, _ := c.entries.peek()
			if !entries[i].ExpiresAt.After(oldest.ExpiresAt) {
				continue
			}
			c.entries.popMin()
		}
		if c.entries.upsert(entries[i]) {
			restored++
		}
	}

	metrics.PriceCacheEntries.Set(float64(c.entries.len()))
	c.logger.Info().Int("restored", restored).Int("stored", len(entries)).Msg("Price cache restored from disk")
	return restored, nil
}
