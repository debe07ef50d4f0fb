// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

// Package logging provides the process-wide zerolog logger.
//
// Call Init once from main with the configured level and format; until then
// a JSON logger at info level writes to stderr. Components take a child
// logger with WithComponent. Request-scoped code logs through Ctx, which adds
// the request and correlation IDs the API middleware stores in the context:
//
//	logging.CtxInfo(ctx).Str("destination", id).Msg("Plan built")
//
// SlogHandler adapts the logger for libraries that expect log/slog, such as
// the supervisor tree's sutureslog hook.
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
