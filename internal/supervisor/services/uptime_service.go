// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/metrics"
)

// UptimeService refreshes app_uptime_seconds on a fixed interval.
type UptimeService struct {
	started  time.Time
	interval time.Duration
}

// NewUptimeService creates the service. A non-positive interval becomes 15s.
func NewUptimeService(started time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{started: started, interval: interval}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	metrics.RecordUptime(u.started)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			metrics.RecordUptime(u.started)
		}
	}
}

func (u *UptimeService) String() string {
	return "uptime"
}
