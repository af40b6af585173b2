// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package crossfilter implements the linked-chart filtering engine behind the
// Marquee dashboard.
//
// The library is loaded once into an immutable Table. Every chart owns at
// most one Selection; a chart is drawn from the rows that satisfy every other
// chart's selection (its own is excluded so a chart never filters itself into
// a fixed point). The pipeline for one chart is:
//
//  1. BuildPredicate: selection payload -> column predicate (nil = no filter)
//  2. Filter: AND of predicates in a fixed column order -> View (row indices)
//  3. Aggregate: Counts / TopK / YearCounts / RatingHistogram / TopRated
//
// # Column semantics
//
//   - year: membership on the scalar year (or an inclusive year range)
//   - genres, actors, directors, countries: set overlap (any member selected)
//   - rating: inclusive range at one-decimal precision
//
// # Concurrency
//
// Table and View are read-only after construction and safe for concurrent
// use. Selections is a plain value type owned by the caller.
//
// # Example
//
//	table := crossfilter.NewTable(items)
//	engine := crossfilter.NewEngine(table, crossfilter.DefaultOptions())
//
//	sel := crossfilter.NewSelections()
//	sel.Set(crossfilter.ChartGenre, &models.SelectedData{
//	    Points: []models.SelectedPoint{{Label: "Drama"}},
//	})
//	dash := engine.RenderAll(sel)
package crossfilter
