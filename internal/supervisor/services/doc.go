// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
//   - CacheMaintenanceService: periodic purge of expired price quotes and
//     badger value-log GC
package services
