// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Command itinera serves European trip recommendations fitted to a
// budget.
//
// Startup order:
//
//  1. Configuration: struct defaults, optional config.yaml, environment (koanf)
//  2. Logging: zerolog from the logging section
//  3. Price cache: in memory, persisted to badger when PRICE_CACHE_PATH is set
//  4. Live pricing: Amadeus client, rate limiter, retry policy and circuit
//     breaker, only when AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are set
//  5. Scorer, optimizer and planner
//  6. Supervisor tree: HTTP server and cache maintenance
//
// Without credentials every price is a deterministic estimate, so the
// service runs fully offline:
//
//	HTTP_PORT=8080 LOG_FORMAT=console ./itinera
//	curl -s localhost:8080/api/v1/recommendations \
//	  -d '{"start_date":"2025-06-01","nights":5,"budget":800,"interests":["foodie"]}'
//
// SIGINT and SIGTERM stop the tree; in-flight requests get
// HTTP_SHUTDOWN_TIMEOUT to finish.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/antoineeeHao/itinera/internal/config"
	"github.com/antoineeeHao/itinera/internal/logging"
	"github.com/antoineeeHao/itinera/internal/supervisor"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().Str("version", version).Msg("Starting Itinera")

	a, err := newApp(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize")
	}
	defer a.close()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return
	}
	a.supervise(tree)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", a.server.Addr).Bool("live_pricing", a.resolver.LiveEnabled()).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Int("cached_quotes", a.cache.Len()).Msg("Itinera stopped")
	if ctx.Err() == nil {
		// The tree stopped on its own.
		a.close()
		os.Exit(1)
	}
}
