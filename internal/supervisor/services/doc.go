// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: runs an *http.Server and shuts it down gracefully
//     when the supervisor context is cancelled
//   - UptimeService: keeps the app_uptime_seconds gauge current
//
// The response cache implements suture.Service itself and needs no wrapper.
package services
