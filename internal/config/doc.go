// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package config loads and validates application configuration.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. Built-in defaults
//  2. An optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
//     /etc/itinera/config.yaml or /etc/itinera/config.yml
//  3. Environment variables, through an explicit name mapping
//
// Common environment variables:
//
//	AMADEUS_CLIENT_ID, AMADEUS_CLIENT_SECRET  live flight prices (both required)
//	PRICE_CACHE_TTL, PRICE_CACHE_SIZE         quote cache (default 1h, 1000)
//	PRICE_CACHE_PATH                          badger directory for the cache
//	REQUESTS_PER_MINUTE                       upstream budget (default 50)
//	WEIGHT_VALUE ... WEIGHT_ENVIRONMENTAL     scoring weights
//	BUDGET_MODE                               greedy or exact
//	HTTP_PORT, LOG_LEVEL, LOG_FORMAT
//
// Invalid values fail startup with a *models.ConfigurationError.
package config
