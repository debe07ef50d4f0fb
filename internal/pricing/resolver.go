// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package pricing

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/antoineeeHao/itinera/internal/cache"
	"github.com/antoineeeHao/itinera/internal/logging"
	"github.com/antoineeeHao/itinera/internal/metrics"
	"github.com/antoineeeHao/itinera/internal/models"
	"github.com/antoineeeHao/itinera/internal/upstream"
)

// DefaultCurrency is used when neither the provider nor the options name one.
const DefaultCurrency = "EUR"

// Options configures a Resolver.
type Options struct {
	// Table supplies base prices and seasonal factors for estimates.
	// Required.
	Table PriceTable

	// Cache holds live quotes. Required when Fetcher is set.
	Cache *cache.PriceCache

	// Fetcher prices items live. Nil disables live pricing, which is the
	// case whenever provider credentials are absent.
	Fetcher upstream.Fetcher

	// Executor applies the rate limit and retry policy to live calls.
	// Required when Fetcher is set.
	Executor *upstream.Executor

	// CacheTTL overrides the cache's default TTL for live quotes.
	CacheTTL time.Duration

	// Currency of estimates and of live quotes that name none.
	// Default: EUR
	Currency string

	// Clock overrides time.Now for ResolvedAt stamps, for tests.
	Clock func() time.Time
}

// Resolver produces a price for every item, trying the cache, then the
// live provider, then a deterministic estimate. Resolve never fails.
//
// When live pricing is disabled the cache is neither read nor written, so
// every quote is an estimate.
//
// Concurrent misses for the same key share one upstream call.
type Resolver struct {
	table    PriceTable
	cache    *cache.PriceCache
	fetcher  upstream.Fetcher
	executor *upstream.Executor
	ttl      time.Duration
	currency string
	now      func() time.Time
	group    singleflight.Group
	logger   zerolog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(opts Options) *Resolver {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Cache == nil || opts.Executor == nil {
		opts.Fetcher = nil
	}

	return &Resolver{
		table:    opts.Table,
		cache:    opts.Cache,
		fetcher:  opts.Fetcher,
		executor: opts.Executor,
		ttl:      opts.CacheTTL,
		currency: opts.Currency,
		now:      opts.Clock,
		logger:   logging.WithComponent("price_resolver"),
	}
}

// LiveEnabled reports whether live pricing is available.
func (r *Resolver) LiveEnabled() bool {
	return r.fetcher != nil
}

// Currency returns the currency of estimates.
func (r *Resolver) Currency() string {
	return r.currency
}

// Table returns the reference price table.
func (r *Resolver) Table() PriceTable {
	return r.table
}

// Resolve returns the price of item on date in class.
//
// Flight items use route IDs of the form "ORIGIN-AIRPORT" and a flight
// class; lodging items use a lodging tier as class; activity items use the
// travel style.
func (r *Resolver) Resolve(ctx context.Context, item models.Item, date time.Time, class string) models.PriceQuote {
	start := time.Now()
	quote := r.resolve(ctx, item, date, class)
	metrics.RecordPriceResolution(string(quote.Source), time.Since(start))
	return quote
}

func (r *Resolver) resolve(ctx context.Context, item models.Item, date time.Time, class string) models.PriceQuote {
	if !r.LiveEnabled() || !r.fetcher.Supports(item.Kind) {
		return r.estimate(item, date, class)
	}

	key := cache.NewKey(item.ID, date, class)
	if cached, ok := r.cache.Get(key); ok {
		cached.Source = models.SourceCache
		cached.ResolvedAt = r.now()
		return cached
	}

	v, err, shared := r.group.Do(key.String(), func() (interface{}, error) {
		return r.fetchLive(ctx, key, item, date, class)
	})
	if err != nil {
		logging.CtxDebug(ctx).Err(err).Str("item", item.ID).Str("date", key.Date).Str("class", class).Msg("Live price unavailable, using estimate")
		return r.estimate(item, date, class)
	}

	quote := v.(models.PriceQuote)
	if shared {
		quote.ResolvedAt = r.now()
	}
	return quote
}

// fetchLive calls the provider through the executor and caches a
// successful quote.
func (r *Resolver) fetchLive(ctx context.Context, key cache.Key, item models.Item, date time.Time, class string) (models.PriceQuote, error) {
	req := upstream.PriceRequest{
		Item:     item,
		Date:     date,
		Class:    models.FlightClass(class),
		Currency: r.currency,
	}
	if item.Kind == models.ItemFlight {
		req.Origin, req.Airport, _ = strings.Cut(item.ID, "-")
	}

	var offer upstream.Offer
	err := r.executor.Execute(ctx, func(ctx context.Context) error {
		var fetchErr error
		offer, fetchErr = r.fetcher.FetchPrice(ctx, req)
		return fetchErr
	})
	if err != nil {
		return models.PriceQuote{}, err
	}

	currency := offer.Currency
	if currency == "" {
		currency = r.currency
	}
	quote := models.PriceQuote{
		ItemID:     item.ID,
		Date:       key.Date,
		Class:      class,
		Amount:     RoundCents(offer.Amount),
		Currency:   currency,
		Source:     models.SourceLive,
		ResolvedAt: r.now(),
	}

	r.cache.Put(key, quote, r.ttl)
	r.logger.Debug().Str("item", item.ID).Str("date", key.Date).Str("class", class).Float64("amount", quote.Amount).Msg("Live price cached")
	return quote, nil
}

// estimate builds a fallback quote. Estimates are never cached.
func (r *Resolver) estimate(item models.Item, date time.Time, class string) models.PriceQuote {
	return models.PriceQuote{
		ItemID:     item.ID,
		Date:       models.DateKey(date),
		Class:      class,
		Amount:     EstimatePrice(r.table, item, date, class),
		Currency:   r.currency,
		Source:     models.SourceFallback,
		ResolvedAt: r.now(),
	}
}
