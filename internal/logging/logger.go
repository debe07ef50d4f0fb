// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level, format and destination of the global logger.
type Config struct {
	Level     string // trace, debug, info, warn, error, disabled; default info
	Format    string // json (default) or console
	Caller    bool
	Timestamp bool
	Output    io.Writer // default os.Stderr
}

// DefaultConfig is JSON at info level with timestamps, on stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Timestamp: true, Output: os.Stderr}
}

var global atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // logging works before Init is called
func init() {
	Init(DefaultConfig())
}

// Init replaces the global logger. Safe to call again, e.g. after
// configuration is loaded.
func Init(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	c := zerolog.New(out).With()
	if cfg.Timestamp {
		c = c.Timestamp()
	}
	if cfg.Caller {
		c = c.Caller()
	}
	l := c.Logger()
	global.Store(&l)
}

// parseLevel accepts zerolog level names plus "warning"; anything
// unrecognized is info.
func parseLevel(name string) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return *global.Load()
}

// With starts a child context of the global logger.
func With() zerolog.Context {
	return global.Load().With()
}

// Info, Warn, Error and Fatal start events on the global logger. Fatal
// exits the process once the event is sent.
func Info() *zerolog.Event  { return global.Load().Info() }
func Warn() *zerolog.Event  { return global.Load().Warn() }
func Error() *zerolog.Event { return global.Load().Error() }
func Fatal() *zerolog.Event { return global.Load().Fatal() }
