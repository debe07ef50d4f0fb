// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/antoineeeHao/itinera/internal/logging"
)

// DefaultMaintenanceInterval is how often expired quotes are purged.
const DefaultMaintenanceInterval = 10 * time.Minute

// gcDiscardRatio is the badger value-log discard ratio for GC runs.
const gcDiscardRatio = 0.5

// ExpiringCache drops expired entries on demand.
// Satisfied by *cache.PriceCache.
type ExpiringCache interface {
	PurgeExpired() int
}

// GarbageCollector compacts a persistent store.
// Satisfied by *cache.DiskStore.
type GarbageCollector interface {
	RunGC(discardRatio float64) error
}

// CacheMaintenanceService periodically purges expired price quotes from
// memory and, when the cache is persisted, runs value-log GC on the store.
// Lookups already ignore expired quotes; the purge only reclaims memory.
type CacheMaintenanceService struct {
	cache    ExpiringCache
	store    GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheMaintenanceService creates the service. store may be nil for a
// memory-only cache. A non-positive interval uses
// DefaultMaintenanceInterval.
func NewCacheMaintenanceService(c ExpiringCache, store GarbageCollector, interval time.Duration) *CacheMaintenanceService {
	if interval <= 0 {
		interval = DefaultMaintenanceInterval
	}
	return &CacheMaintenanceService{
		cache:    c,
		store:    store,
		interval: interval,
		logger:   logging.WithComponent("cache_maintenance"),
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Bool("persistent", s.store != nil).Msg("Cache maintenance started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// A failed GC is retried on the next tick rather than
			// restarting the service.
			if err := s.RunOnce(); err != nil {
				s.logger.Warn().Err(err).Msg("Price store GC failed")
			}
		}
	}
}

// RunOnce performs one maintenance pass.
func (s *CacheMaintenanceService) RunOnce() error {
	if purged := s.cache.PurgeExpired(); purged > 0 {
		s.logger.Debug().Int("purged", purged).Msg("Expired price quotes purged")
	}
	if s.store == nil {
		return nil
	}
	return s.store.RunGC(gcDiscardRatio)
}

// String names the service in supervisor events.
func (s *CacheMaintenanceService) String() string {
	return "cache-maintenance"
}
