// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP REST API for the cross-filter dashboard.

Every data endpoint recomputes charts synchronously from the immutable library
table held by a crossfilter.Engine. Clients send the selection state of the
dashboard (one Plotly-style selectedData object per chart) and receive every
linked chart filtered by all selections except the chart's own.

Endpoints:

	GET  /api/v1/health              health summary with cache statistics
	GET  /api/v1/health/live         liveness probe
	GET  /api/v1/health/ready        readiness probe (library loaded)
	GET  /api/v1/health/performance  request latency percentiles per route
	GET  /api/v1/library/summary     item count, distinct values, year span, ratings
	GET  /api/v1/dashboard           unfiltered dashboard
	POST /api/v1/dashboard           dashboard for {"selections": {...}}
	POST /api/v1/dashboard/reset     unfiltered dashboard and empty selections
	POST /api/v1/charts/{chart}      one chart for {"selections": {...}}
	GET  /metrics                    Prometheus metrics

Request example:

	POST /api/v1/dashboard
	{
	  "selections": {
	    "genre_bar_chart":   {"points": [{"label": "Drama"}]},
	    "ratings_histogram": {"range": {"x": [6.5, 8.2]}}
	  }
	}

All responses use the models.APIResponse envelope. Malformed JSON is a 400
BAD_REQUEST, selections keyed by an unknown or non-selectable chart are a 400
VALIDATION_ERROR, and an unknown chart in the path is a 404 NOT_FOUND. A
selection whose payload carries no usable values is ignored rather than
rejected.

Computed payloads are cached by a hash of the active selections for the
configured TTL; cache status is reported in metadata.cached and the X-Cache
response header.

Middleware (outermost first): request ID with logging context, real IP, panic
recovery, CORS, gzip compression, Prometheus metrics, performance monitor, and
per-IP rate limiting on /api/v1.
*/
package api
