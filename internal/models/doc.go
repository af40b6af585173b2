// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines data structures shared across Marquee.

Key Components:

  - Item: One library entry (title, year, rating, tag sets, studio, bitrate)
  - SelectedData: Chart selection payload (points or an x range)
  - ChartData / Dashboard: Computed chart payloads returned by the API
  - APIResponse: Standardized API response wrapper

Models carry no behaviour beyond trivial helpers; filtering and aggregation
live in the crossfilter package.
*/
package models
