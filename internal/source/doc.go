// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package source loads the media library that the dashboard filters.

Two loaders are available, selected by library.source:

  - csv: reads a library export with one movie per row. List columns
    (genres, countries, actors, directors) may be written as Python list
    literals, e.g. ['Drama', "Children's"], or as JSON arrays.
  - plex: pages through /library/sections/{key}/all on a Plex Media Server.

The Plex client authenticates with X-Plex-Token, paces requests with a token
bucket, retries HTTP 429 responses with exponential backoff (honouring
Retry-After) and runs every call behind a circuit breaker whose state is
exported as Prometheus metrics.

Loading happens once at startup. The result is handed to crossfilter.NewTable
and never modified afterwards.

Usage:

	loader, err := source.New(cfg)
	if err != nil {
	    return err
	}
	items, err := source.LoadLibrary(ctx, loader)
*/
package source
