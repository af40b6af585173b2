// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor runs the long-lived parts of the server under a
thejerf/suture/v4 supervisor tree.

Tree layout:

	marquee (root)
	├── maintenance-layer   cache sweeper, uptime gauge
	└── api-layer           HTTP server

A failing maintenance service is restarted with backoff without touching the
HTTP server. Supervisor events are logged through sutureslog using a
log/slog logger backed by zerolog (see logging.NewSlogLogger).

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMaintenanceService(handler.Cache())
	tree.AddMaintenanceService(services.NewUptimeService(start, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
