// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/middleware"
	"github.com/tomtom215/marquee/internal/models"
)

// Health handles health check requests
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startTime)
	metrics.RecordUptime(h.startTime)

	status := "healthy"
	items := 0
	if h.engine == nil {
		status = "degraded"
	} else {
		items = h.engine.Table().Len()
	}

	health := models.HealthStatus{
		Status:   status,
		Version:  h.library.Version,
		Source:   h.library.Source,
		Items:    items,
		LoadedAt: h.library.LoadedAt,
		Uptime:   uptime.Seconds(),
	}

	if h.cache != nil {
		stats := h.cache.GetStats()
		health.Cache = &models.CacheStatus{
			Entries:   stats.TotalKeys,
			Hits:      stats.Hits,
			Misses:    stats.Misses,
			Evictions: stats.Evictions,
			HitRate:   h.cache.HitRate(),
		}
	}

	respondSuccess(w, health, models.Metadata{})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once a non-empty library is loaded
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.engine != nil && h.engine.Table().Len() > 0

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"status": status,
			"ready":  ready,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// PerformanceReport is the payload of GET /health/performance.
type PerformanceReport struct {
	Endpoints []middleware.EndpointStats  `json:"endpoints"`
	Recent    []middleware.RequestMetrics `json:"recent"`
}

// HealthPerformance returns latency percentiles per route and the most
// recent requests.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, PerformanceReport{
		Endpoints: h.perfMon.GetStats(),
		Recent:    h.perfMon.GetRecentMetrics(20),
	}, models.Metadata{})
}
