// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

// Options tunes chart output.
type Options struct {
	TopK             int
	TableRows        int
	HoverTitles      int
	HistogramStart   float64
	HistogramEnd     float64
	HistogramBinSize float64
	Tolerance        Tolerance
}

// DefaultOptions returns the standard dashboard layout.
func DefaultOptions() Options {
	return Options{
		TopK:             10,
		TableRows:        12,
		HoverTitles:      5,
		HistogramStart:   0,
		HistogramEnd:     10,
		HistogramBinSize: 0.3,
		Tolerance:        DefaultTolerance(),
	}
}

// Engine computes chart data from the shared table. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	table *Table
	opts  Options
}

// NewEngine creates an engine over table. Zero option fields fall back to
// DefaultOptions.
func NewEngine(table *Table, opts Options) *Engine {
	def := DefaultOptions()
	if opts.TopK <= 0 {
		opts.TopK = def.TopK
	}
	if opts.TableRows <= 0 {
		opts.TableRows = def.TableRows
	}
	if opts.HoverTitles <= 0 {
		opts.HoverTitles = def.HoverTitles
	}
	if opts.HistogramBinSize <= 0 {
		opts.HistogramBinSize = def.HistogramBinSize
	}
	if opts.HistogramEnd <= opts.HistogramStart {
		opts.HistogramStart, opts.HistogramEnd = def.HistogramStart, def.HistogramEnd
	}
	if opts.Tolerance == (Tolerance{}) {
		opts.Tolerance = def.Tolerance
	}
	return &Engine{table: table, opts: opts}
}

// Table returns the underlying table.
func (e *Engine) Table() *Table {
	return e.table
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// predicates builds the predicates of every selection whose column passes
// keep. It also returns the charts that contributed a predicate.
func (e *Engine) predicates(sel Selections, keep func(Column) bool) ([]Predicate, []string) {
	var preds []Predicate
	var applied []string
	for _, c := range sel.Active() {
		col := c.Column()
		if !keep(col) {
			continue
		}
		p := BuildPredicate(col, sel.Get(c), e.opts.Tolerance)
		if p == nil {
			logging.Debug().Str("chart", string(c)).Msg("Ignoring selection without usable values")
			continue
		}
		preds = append(preds, p)
		applied = append(applied, string(c))
	}
	return preds, applied
}

func allColumns(Column) bool { return true }

// Render computes a single chart.
func (e *Engine) Render(chart Chart, sel Selections) (models.ChartData, error) {
	if !chart.Valid() {
		return models.ChartData{}, ErrUnknownChart
	}
	preds, applied := e.predicates(sel, chart.FilteredBy)
	view := Filter(e.table, preds)

	data := models.ChartData{
		Chart:      string(chart),
		Title:      chart.Title(),
		FilteredBy: applied,
		Rows:       view.Len(),
	}
	if data.FilteredBy == nil {
		data.FilteredBy = []string{}
	}

	switch chart {
	case ChartYear:
		data.Years = YearCounts(view, e.opts.HoverTitles)
	case ChartGenre:
		data.Counts = SortCounts(Counts(view, ColumnGenres))
	case ChartCountry:
		data.Counts = SortCounts(Counts(view, ColumnCountries))
	case ChartActors:
		data.Counts = TopK(Counts(view, ColumnActors), e.opts.TopK)
	case ChartDirectors:
		data.Counts = TopK(Counts(view, ColumnDirectors), e.opts.TopK)
	case ChartRatings:
		data.Histogram = RatingHistogram(view, e.opts.HistogramStart, e.opts.HistogramEnd, e.opts.HistogramBinSize)
		summary := Summarize(view)
		data.Rating = &summary
	case ChartRatingTable:
		data.TopRated = TopRated(view, e.opts.TableRows)
	case ChartActorRace:
		data.RaceFrames, data.RaceMaximum = ActorRace(view, e.opts.TopK)
	}
	return data, nil
}

// RenderAll computes every chart for one selection state.
func (e *Engine) RenderAll(sel Selections) models.Dashboard {
	active := sel.Active()
	dash := models.Dashboard{
		TotalRows: e.table.Len(),
		Active:    make([]string, len(active)),
		Charts:    make(map[string]models.ChartData, len(Charts)),
	}
	for i, c := range active {
		dash.Active[i] = string(c)
	}

	preds, _ := e.predicates(sel, allColumns)
	dash.FilteredRows = Filter(e.table, preds).Len()

	for _, c := range Charts {
		data, err := e.Render(c, sel)
		if err != nil {
			continue
		}
		dash.Charts[string(c)] = data
	}
	return dash
}

// Summary describes the whole table.
func (e *Engine) Summary(source string, loadedAt time.Time) models.LibrarySummary {
	all := e.table.All()
	s := models.LibrarySummary{
		Items:    e.table.Len(),
		Source:   source,
		LoadedAt: loadedAt,
		Rating:   Summarize(all),
		Distinct: models.DistinctCount{
			Genres:    len(Counts(all, ColumnGenres)),
			Countries: len(Counts(all, ColumnCountries)),
			Actors:    len(Counts(all, ColumnActors)),
			Directors: len(Counts(all, ColumnDirectors)),
		},
	}
	studios := make(map[string]struct{})
	all.Each(func(item *models.Item) {
		if item.Studio != "" {
			studios[item.Studio] = struct{}{}
		}
		if item.Year == 0 {
			return
		}
		if s.FirstYear == 0 || item.Year < s.FirstYear {
			s.FirstYear = item.Year
		}
		if item.Year > s.LastYear {
			s.LastYear = item.Year
		}
	})
	s.Distinct.Studios = len(studios)
	return s
}
