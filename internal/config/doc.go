// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config provides centralized configuration management for Marquee.

# Configuration Sources

Configuration is layered with Koanf v2, later sources overriding earlier ones:

 1. Built-in defaults (structs provider)
 2. YAML file: CONFIG_PATH, or the first of config.yaml, config.yml,
    /etc/marquee/config.yaml, /etc/marquee/config.yml
 3. Environment variables (explicit mapping, unmapped variables are ignored)

# Environment Variables

Library:
  - LIBRARY_SOURCE: csv or plex (default: csv)
  - LIBRARY_CSV_PATH: CSV export path (default: data/library.csv)

Plex (library.source=plex):
  - PLEX_URL: Plex Media Server URL (required)
  - PLEX_TOKEN: X-Plex-Token (required)
  - PLEX_SECTION: library section key (required)
  - PLEX_PAGE_SIZE: items per request (default: 100)
  - PLEX_REQUESTS_PER_SECOND: request pacing (default: 5)
  - PLEX_TIMEOUT: per-request timeout (default: 30s)

Dashboard:
  - DASHBOARD_TOP_K, DASHBOARD_TABLE_ROWS, DASHBOARD_HOVER_TITLES
  - DASHBOARD_HISTOGRAM_BIN_SIZE
  - DASHBOARD_RATING_PAD_BELOW, DASHBOARD_RATING_PAD_ABOVE

HTTP Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8050)
  - HTTP_TIMEOUT (default: 30s)

Security:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT

Cache:
  - CACHE_ENABLED (default: true), CACHE_TTL (default: 5m)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file:line

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
