// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// CountEntry is one bar of a categorical chart.
type CountEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// YearCount is one bar of the movies-per-year chart.
// TopTitles holds the best rated titles of that year for hover text.
type YearCount struct {
	Year      int      `json:"year"`
	Count     int      `json:"count"`
	TopTitles []string `json:"top_titles,omitempty"`
}

// HistogramBin is one bin of the rating distribution, covering [Start, End).
type HistogramBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// RatingSummary summarises the ratings of a filtered view.
// Empty views report zero sentinels with Empty set.
type RatingSummary struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Empty bool    `json:"empty,omitempty"`
}

// RatedTitle is one row of the highest-rated table.
type RatedTitle struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// RaceFrame is one animation frame of the actor race chart.
type RaceFrame struct {
	Year    int          `json:"year"`
	Entries []CountEntry `json:"entries"`
}

// ChartData is the computed payload for a single chart.
// Only the field matching the chart kind is populated.
type ChartData struct {
	Chart       string         `json:"chart"`
	Title       string         `json:"title"`
	FilteredBy  []string       `json:"filtered_by"`
	Rows        int            `json:"rows"`
	Counts      []CountEntry   `json:"counts,omitempty"`
	Years       []YearCount    `json:"years,omitempty"`
	Histogram   []HistogramBin `json:"histogram,omitempty"`
	Rating      *RatingSummary `json:"rating,omitempty"`
	TopRated    []RatedTitle   `json:"top_rated,omitempty"`
	RaceFrames  []RaceFrame    `json:"race_frames,omitempty"`
	RaceMaximum int            `json:"race_maximum,omitempty"`
}

// Dashboard is the full set of linked charts for one selection state.
type Dashboard struct {
	TotalRows    int                  `json:"total_rows"`
	FilteredRows int                  `json:"filtered_rows"`
	Active       []string             `json:"active_selections"`
	Charts       map[string]ChartData `json:"charts"`
}
