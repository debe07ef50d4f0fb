// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

/*
Package supervisor runs Itinera's long-lived services under a suture v4
supervision tree.

	itinera
	├── data-layer
	│   └── CacheMaintenanceService (purges expired quotes, badger GC)
	└── api-layer
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are
logged through sutureslog, which takes a *slog.Logger; pass
logging.NewSlogLogger() so the events land in the zerolog stream.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCacheMaintenanceService(priceCache, diskStore, 10*time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)
*/
package supervisor
