// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP instrumentation middleware for the chi router.

Key Components:

  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests, labelled by chi route pattern
  - PerformanceMonitor: in-memory sliding window of request latencies with
    percentile summaries, served on /api/v1/health/performance

Both wrap http.Handler and are mounted with r.Use:

	perf := middleware.NewPerformanceMonitor(1000, time.Second)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perf.Middleware)

Route patterns (for example /api/v1/charts/{chart}) are resolved after the
inner handler runs, so the middleware must sit inside a chi router. Requests
that match no route are labelled "unmatched".
*/
package middleware
