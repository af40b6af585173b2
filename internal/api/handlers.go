// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"time"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/crossfilter"
	"github.com/tomtom215/marquee/internal/middleware"
)

// LibraryInfo describes where the loaded library came from.
type LibraryInfo struct {
	Source   string
	LoadedAt time.Time
	Version  string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writing and validation helpers
//   - handlers_health.go: health and performance endpoints
//   - handlers_dashboard.go: library summary, dashboard and chart endpoints
type Handler struct {
	engine    *crossfilter.Engine
	config    *config.Config
	library   LibraryInfo
	startTime time.Time
	cache     *cache.Cache
	perfMon   *middleware.PerformanceMonitor
}

// NewHandler creates the API handler over a loaded engine.
//
// The response cache is created when cfg.Cache.Enabled is set; its Serve
// method should be run under the supervisor to sweep expired entries. The
// performance monitor keeps the last 1000 requests.
//
// Example:
//
//	handler := api.NewHandler(engine, cfg, api.LibraryInfo{Source: "csv", LoadedAt: time.Now()})
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
func NewHandler(engine *crossfilter.Engine, cfg *config.Config, library LibraryInfo) *Handler {
	h := &Handler{
		engine:    engine,
		config:    cfg,
		library:   library,
		startTime: time.Now(),
		perfMon:   middleware.NewPerformanceMonitor(1000, time.Second),
	}
	if cfg != nil && cfg.Cache.Enabled {
		h.cache = cache.New("dashboard", cfg.Cache.TTL)
	}
	return h
}

// Cache returns the response cache, or nil when caching is disabled.
func (h *Handler) Cache() *cache.Cache {
	return h.cache
}
