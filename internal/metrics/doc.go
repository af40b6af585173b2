// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics defines the Prometheus metrics exported on GET /metrics.

All collectors are registered with the default registry through promauto at
package initialisation, so importing the package is enough to expose them.

# Metric Families

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Dashboard:
  - dashboard_renders_total{scope}: scope is "dashboard" or a chart name
  - dashboard_render_duration_seconds{scope}
  - dashboard_active_selections: selections per render request

Library:
  - library_items
  - library_load_duration_seconds{source}
  - library_load_errors_total{source}
  - library_rows_skipped_total{source}

Cache:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}
  - cache_entries{cache_type}, cache_evictions_total{cache_type}

Circuit breaker (Plex client):
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Process:
  - app_info{version,go_version}, app_uptime_seconds

Endpoint labels are chi route patterns (e.g. /api/v1/charts/{chart}) so
cardinality stays bounded.
*/
package metrics
