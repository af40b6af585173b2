// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"errors"
	"fmt"
)

// ErrUnknownChart is returned when a chart name is not part of the dashboard.
var ErrUnknownChart = errors.New("unknown chart")

// Chart identifies one linked chart of the dashboard.
type Chart string

// Dashboard charts.
const (
	ChartYear        Chart = "year_bar_chart"
	ChartGenre       Chart = "genre_bar_chart"
	ChartCountry     Chart = "country_choropleth"
	ChartActors      Chart = "popular_actor_bar"
	ChartDirectors   Chart = "popular_director_bar"
	ChartRatings     Chart = "ratings_histogram"
	ChartRatingTable Chart = "rating_table"
	ChartActorRace   Chart = "popular_actor_race"
)

type chartDef struct {
	column     Column
	selectable bool
	title      string
	// inputs, when set, limits the columns whose selections filter the
	// chart. Otherwise every column except the chart's own applies.
	inputs []Column
}

// raceInputs are the selections that filter the actor race.
var raceInputs = []Column{ColumnYear, ColumnDirectors, ColumnCountries}

var chartDefs = map[Chart]chartDef{
	ChartYear:        {column: ColumnYear, selectable: true, title: "Movies per Year"},
	ChartGenre:       {column: ColumnGenres, selectable: true, title: "Genres"},
	ChartCountry:     {column: ColumnCountries, selectable: true, title: "Countries"},
	ChartActors:      {column: ColumnActors, selectable: true, title: "Most Popular Actors"},
	ChartDirectors:   {column: ColumnDirectors, selectable: true, title: "Most Popular Directors"},
	ChartRatings:     {column: ColumnRating, selectable: true, title: "Rating Distribution"},
	ChartRatingTable: {column: ColumnNone, title: "Highest Rated"},
	ChartActorRace:   {column: ColumnActors, title: "Actor Appearances Over Time", inputs: raceInputs},
}

// Charts lists every chart in display order.
var Charts = []Chart{
	ChartYear,
	ChartGenre,
	ChartCountry,
	ChartActors,
	ChartDirectors,
	ChartRatings,
	ChartRatingTable,
	ChartActorRace,
}

// ParseChart resolves a chart name.
func ParseChart(name string) (Chart, error) {
	c := Chart(name)
	if _, ok := chartDefs[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	return c, nil
}

// Valid reports whether c is a known chart.
func (c Chart) Valid() bool {
	_, ok := chartDefs[c]
	return ok
}

// Column returns the column the chart's selection constrains. Charts that
// share a column ignore each other's selections.
func (c Chart) Column() Column {
	return chartDefs[c].column
}

// FilteredBy reports whether selections on col filter the chart.
func (c Chart) FilteredBy(col Column) bool {
	def := chartDefs[c]
	if def.inputs != nil {
		for _, in := range def.inputs {
			if in == col {
				return true
			}
		}
		return false
	}
	return def.column == ColumnNone || col != def.column
}

// Selectable reports whether the chart emits selections.
func (c Chart) Selectable() bool {
	return chartDefs[c].selectable
}

// Title returns the display title.
func (c Chart) Title() string {
	return chartDefs[c].title
}

// SelectableCharts returns the charts that emit selections, in display order.
func SelectableCharts() []Chart {
	out := make([]Chart, 0, len(Charts))
	for _, c := range Charts {
		if c.Selectable() {
			out = append(out, c)
		}
	}
	return out
}
