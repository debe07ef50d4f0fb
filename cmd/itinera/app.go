// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package main

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/antoineeeHao/itinera/internal/api"
	"github.com/antoineeeHao/itinera/internal/budget"
	"github.com/antoineeeHao/itinera/internal/cache"
	"github.com/antoineeeHao/itinera/internal/catalog"
	"github.com/antoineeeHao/itinera/internal/config"
	"github.com/antoineeeHao/itinera/internal/logging"
	"github.com/antoineeeHao/itinera/internal/planner"
	"github.com/antoineeeHao/itinera/internal/pricing"
	"github.com/antoineeeHao/itinera/internal/recommend"
	"github.com/antoineeeHao/itinera/internal/supervisor"
	"github.com/antoineeeHao/itinera/internal/supervisor/services"
	"github.com/antoineeeHao/itinera/internal/upstream"
)

// app holds the wired service objects. The cache and limiter are created
// once here and shared by reference.
type app struct {
	cfg      *config.Config
	cache    *cache.PriceCache
	store    *cache.DiskStore
	resolver *pricing.Resolver
	planner  *planner.Planner
	server   *http.Server
}

// newApp wires every component from cfg. Callers must call close.
func newApp(cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	cacheOpts := cache.Options{
		TTL:      cfg.Pricing.CacheTTL,
		Capacity: cfg.Pricing.CacheSize,
	}
	if cfg.Pricing.CachePath != "" {
		store, err := cache.OpenDiskStore(cfg.Pricing.CachePath)
		if err != nil {
			return nil, fmt.Errorf("open price store: %w", err)
		}
		a.store = store
		cacheOpts.Store = store
	}
	a.cache = cache.New(cacheOpts)

	if a.store != nil {
		restored, err := a.cache.Restore()
		if err != nil {
			logging.Warn().Err(err).Msg("Could not restore cached prices; starting empty")
		} else {
			logging.Info().Int("entries", restored).Str("path", cfg.Pricing.CachePath).Msg("Price cache restored")
		}
	}

	cat := catalog.New()
	opts := pricing.Options{
		Table:    cat,
		Cache:    a.cache,
		CacheTTL: cfg.Pricing.CacheTTL,
		Currency: cfg.Pricing.Currency,
	}

	if cfg.HasCredentials() {
		client, err := upstream.NewAmadeusClient(cfg.AmadeusClientConfig())
		if err != nil {
			a.close()
			return nil, fmt.Errorf("create amadeus client: %w", err)
		}
		limiter := upstream.NewLimiter(cfg.Pricing.RequestsPerMinute)
		opts.Fetcher = client
		opts.Executor = upstream.NewExecutor(limiter, cfg.RetryPolicy(), upstream.NewBreaker(cfg.BreakerConfig()))
		logging.Info().
			Int("requests_per_minute", cfg.Pricing.RequestsPerMinute).
			Str("base_url", cfg.Amadeus.BaseURL).
			Msg("Live pricing enabled")
	} else {
		logging.Info().Msg("No provider credentials configured; all prices are estimates")
	}
	a.resolver = pricing.NewResolver(opts)

	scorer, err := recommend.NewScorer(cfg.ScorerConfig(), cat, a.resolver, logging.WithComponent("scorer"))
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create scorer: %w", err)
	}
	optimizer, err := budget.NewOptimizer(cfg.OptimizerConfig(), cat, a.resolver, logging.WithComponent("optimizer"))
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create optimizer: %w", err)
	}
	a.planner = planner.New(scorer, optimizer)

	mw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Server.RateLimitReqs,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
		RateLimitDisabled:  cfg.Server.RateLimitDisabled,
	})
	handler := api.NewHandler(a.planner, cat, a.resolver, version)
	router := api.NewRouter(handler, mw, cfg.Server.Timeout)

	a.server = &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout * 2,
	}
	return a, nil
}

// supervise adds the app's long-running services to tree.
func (a *app) supervise(tree *supervisor.SupervisorTree) {
	var gc services.GarbageCollector
	if a.store != nil {
		gc = a.store
	}
	tree.AddDataService(services.NewCacheMaintenanceService(a.cache, gc, a.cfg.Pricing.CacheMaintenanceInterval))
	tree.AddAPIService(services.NewHTTPServerService(a.server, a.cfg.Server.ShutdownTimeout))
}

// close releases the disk store.
func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing price store")
	}
}
