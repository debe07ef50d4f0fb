// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	logger.Warn("service restarted",
		slog.String("service", "http"),
		slog.Int("attempt", 2),
		slog.Duration("backoff", time.Second),
		slog.Bool("ok", true),
	)

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["level"] != "warn" || m["message"] != "service restarted" {
		t.Errorf("entry = %v", m)
	}
	if m["service"] != "http" || m["attempt"] != float64(2) || m["ok"] != true {
		t.Errorf("attributes missing from %v", m)
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf))).
		With(slog.String("tree", "itinera")).
		WithGroup("supervisor")

	logger.Info("event", slog.String("name", "cache"), slog.Group("backoff", slog.Int("failures", 3)))

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["supervisor.tree"] != "itinera" {
		t.Errorf("supervisor.tree = %v, want itinera", m["supervisor.tree"])
	}
	if m["supervisor.name"] != "cache" {
		t.Errorf("supervisor.name = %v, want cache", m["supervisor.name"])
	}
	if m["supervisor.backoff.failures"] != float64(3) {
		t.Errorf("supervisor.backoff.failures = %v, want 3", m["supervisor.backoff.failures"])
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandlerWithLogger(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be disabled on a warn logger")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("error should be enabled on a warn logger")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
