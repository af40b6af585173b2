// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee dashboard server.

Marquee loads a movie library once at startup, either from a CSV export or
directly from a Plex Media Server section, and serves linked cross-filter
charts over a JSON API. Selecting marks on one chart filters every other chart.

# Application Architecture

	RootSupervisor ("marquee")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── Response cache sweeper
	│   └── Uptime gauge
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Library: CSV or Plex loader, loaded once
 4. Crossfilter engine over the immutable table
 5. API handler, response cache and chi router
 6. Supervisor tree

# Configuration

	LIBRARY_SOURCE=csv           # csv or plex
	LIBRARY_CSV_PATH=data/library.csv
	PLEX_URL=http://localhost:32400
	PLEX_TOKEN=<token>
	PLEX_SECTION=1
	HTTP_PORT=8050
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and waits for in-flight requests (server.timeout).
*/
package main
