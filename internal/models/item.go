// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"
)

// Item is one library entry (a movie) with the metadata used by the dashboard.
//
// Items are built once by a source loader and are never modified after the
// crossfilter table has been constructed from them.
//
// Fields:
//   - Title: Display title
//   - Year: Release year (0 when unknown)
//   - Rating: Audience rating on a 0-10 scale, only meaningful when Rated is true
//   - Genres, Countries, Actors, Directors: Set-valued tag columns
//   - Studio: Production studio
//   - Bitrate: Bitrate of the first media version in kbps
//   - ReleaseDate: Original release date (zero when unknown)
//   - RatingKey: Plex metadata key (empty for CSV sources)
type Item struct {
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Rating      float64   `json:"rating"`
	Rated       bool      `json:"rated"`
	Genres      []string  `json:"genres"`
	Countries   []string  `json:"countries"`
	Actors      []string  `json:"actors"`
	Directors   []string  `json:"directors"`
	Studio      string    `json:"studio,omitempty"`
	Bitrate     int       `json:"bitrate,omitempty"`
	ReleaseDate time.Time `json:"release_date,omitempty"`
	RatingKey   string    `json:"rating_key,omitempty"`
}

// LibrarySummary describes the loaded library as a whole.
type LibrarySummary struct {
	Items     int           `json:"items"`
	Source    string        `json:"source"`
	LoadedAt  time.Time     `json:"loaded_at"`
	Distinct  DistinctCount `json:"distinct"`
	FirstYear int           `json:"first_year"`
	LastYear  int           `json:"last_year"`
	Rating    RatingSummary `json:"rating"`
}

// DistinctCount holds the number of distinct values per set-valued column.
type DistinctCount struct {
	Genres    int `json:"genres"`
	Countries int `json:"countries"`
	Actors    int `json:"actors"`
	Directors int `json:"directors"`
	Studios   int `json:"studios"`
}
