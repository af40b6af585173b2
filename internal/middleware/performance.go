// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
)

// CacheStatusHeader is set by handlers to "HIT" or "MISS" so the monitor can
// report cache effectiveness per route.
const CacheStatusHeader = "X-Cache"

// RequestMetrics is one observed request.
type RequestMetrics struct {
	Route      string    `json:"route"`
	Method     string    `json:"method"`
	DurationMS int64     `json:"duration_ms"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
	CacheHit   bool      `json:"cache_hit"`
}

// EndpointStats contains aggregated statistics for one method and route.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	CacheHits    int64   `json:"cache_hits"`
	AvgDuration  float64 `json:"avg_duration_ms"`
	P50Duration  int64   `json:"p50_duration_ms"`
	P95Duration  int64   `json:"p95_duration_ms"`
	P99Duration  int64   `json:"p99_duration_ms"`
	MinDuration  int64   `json:"min_duration_ms"`
	MaxDuration  int64   `json:"max_duration_ms"`
}

// PerformanceMonitor keeps the last maxMetrics requests in a ring buffer.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	metrics       []RequestMetrics
	next          int
	full          bool
	slowThreshold time.Duration
}

// NewPerformanceMonitor creates a monitor holding up to maxMetrics requests.
// Requests slower than slowThreshold are logged at warn level; zero disables
// slow request logging.
func NewPerformanceMonitor(maxMetrics int, slowThreshold time.Duration) *PerformanceMonitor {
	if maxMetrics <= 0 {
		maxMetrics = 1000
	}
	return &PerformanceMonitor{
		metrics:       make([]RequestMetrics, maxMetrics),
		slowThreshold: slowThreshold,
	}
}

// RecordRequest adds a request to the window, overwriting the oldest entry
// when full.
func (pm *PerformanceMonitor) RecordRequest(m *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.metrics[pm.next] = *m
	pm.next++
	if pm.next == len(pm.metrics) {
		pm.next = 0
		pm.full = true
	}
}

// Len returns the number of requests in the window.
func (pm *PerformanceMonitor) Len() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.lenLocked()
}

func (pm *PerformanceMonitor) lenLocked() int {
	if pm.full {
		return len(pm.metrics)
	}
	return pm.next
}

// snapshot returns the window oldest first. Caller holds the read lock.
func (pm *PerformanceMonitor) snapshot() []RequestMetrics {
	if !pm.full {
		out := make([]RequestMetrics, pm.next)
		copy(out, pm.metrics[:pm.next])
		return out
	}
	out := make([]RequestMetrics, 0, len(pm.metrics))
	out = append(out, pm.metrics[pm.next:]...)
	return append(out, pm.metrics[:pm.next]...)
}

// GetStats returns per-endpoint statistics ordered by request count.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	window := pm.snapshot()
	pm.mu.RUnlock()

	type bucket struct {
		durations []int64
		hits      int64
	}
	buckets := make(map[string]*bucket)
	for _, m := range window {
		key := m.Method + " " + m.Route
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.durations = append(b.durations, m.DurationMS)
		if m.CacheHit {
			b.hits++
		}
	}

	stats := make([]EndpointStats, 0, len(buckets))
	for endpoint, b := range buckets {
		sorted := b.durations
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum int64
		for _, d := range sorted {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(sorted)),
			CacheHits:    b.hits,
			AvgDuration:  float64(sum) / float64(len(sorted)),
			P50Duration:  percentile(sorted, 0.50),
			P95Duration:  percentile(sorted, 0.95),
			P99Duration:  percentile(sorted, 0.99),
			MinDuration:  sorted[0],
			MaxDuration:  sorted[len(sorted)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})

	return stats
}

// GetRecentMetrics returns up to n of the most recent requests, oldest first.
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	window := pm.snapshot()
	pm.mu.RUnlock()

	if n > len(window) {
		n = len(window)
	}
	if n < 0 {
		n = 0
	}
	return window[len(window)-n:]
}

// Middleware records every request that passes through it.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusWriter(w)

		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		route := routePattern(r)
		pm.RecordRequest(&RequestMetrics{
			Route:      route,
			Method:     r.Method,
			DurationMS: elapsed.Milliseconds(),
			StatusCode: sw.statusCode,
			Timestamp:  start,
			CacheHit:   sw.Header().Get(CacheStatusHeader) == "HIT",
		})

		if pm.slowThreshold > 0 && elapsed > pm.slowThreshold {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", route).
				Dur("duration", elapsed).
				Dur("threshold", pm.slowThreshold).
				Msg("Slow request detected")
		}
	})
}

// percentile returns the nearest-rank value at p from an ascending slice.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)-1) * p)
	return sorted[index]
}
