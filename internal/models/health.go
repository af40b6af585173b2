// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "time"

// HealthStatus is the payload of GET /api/v1/health.
//
// Status is "healthy" once a library is loaded. Cache is nil when the
// response cache is disabled.
type HealthStatus struct {
	Status   string       `json:"status"`
	Version  string       `json:"version"`
	Source   string       `json:"source"`
	Items    int          `json:"items"`
	LoadedAt time.Time    `json:"loaded_at"`
	Uptime   float64      `json:"uptime"`
	Cache    *CacheStatus `json:"cache,omitempty"`
}

// CacheStatus summarises the response cache.
type CacheStatus struct {
	Entries   int64   `json:"entries"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	HitRate   float64 `json:"hit_rate"`
}
