// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/marquee/internal/models"
)

// Tolerance pads a rating selection built from clicked histogram bins.
// A point carries the bin centre, so the padding must reach both bin edges.
type Tolerance struct {
	Below float64
	Above float64
}

// DefaultTolerance matches 0.3-wide rating bins.
func DefaultTolerance() Tolerance {
	return Tolerance{Below: 0.16, Above: 0.06}
}

// Predicate constrains one column of the table.
type Predicate interface {
	Column() Column
	Match(item *models.Item) bool
}

// BuildPredicate converts a chart selection into a predicate on column.
// A nil, empty or malformed selection yields a nil predicate, which means no
// constraint.
func BuildPredicate(column Column, sel *models.SelectedData, tol Tolerance) Predicate {
	if sel.IsEmpty() {
		return nil
	}
	switch {
	case column == ColumnYear:
		return buildYearPredicate(sel)
	case column == ColumnRating:
		return buildRatingPredicate(sel, tol)
	case column.SetValued():
		return buildOverlapPredicate(column, sel)
	default:
		return nil
	}
}

type yearSetPredicate struct {
	years map[int]struct{}
}

func (p yearSetPredicate) Column() Column { return ColumnYear }

func (p yearSetPredicate) Match(item *models.Item) bool {
	_, ok := p.years[item.Year]
	return ok
}

type yearRangePredicate struct {
	min, max int
}

func (p yearRangePredicate) Column() Column { return ColumnYear }

func (p yearRangePredicate) Match(item *models.Item) bool {
	return item.Year >= p.min && item.Year <= p.max
}

func buildYearPredicate(sel *models.SelectedData) Predicate {
	years := make(map[int]struct{}, len(sel.Points))
	for _, pt := range sel.Points {
		if year, ok := parseYear(pt.Label); ok {
			years[year] = struct{}{}
			continue
		}
		if pt.X != nil && isWhole(*pt.X) {
			years[int(*pt.X)] = struct{}{}
		}
	}
	if len(years) > 0 {
		return yearSetPredicate{years: years}
	}

	lo, hi, ok := rangeBounds(sel)
	if !ok {
		return nil
	}
	p := yearRangePredicate{min: int(math.Ceil(lo)), max: int(math.Floor(hi))}
	if p.min > p.max {
		return nil
	}
	return p
}

func parseYear(label string) (int, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(label); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(label, 64)
	if err != nil || !isWhole(f) {
		return 0, false
	}
	return int(f), true
}

func isWhole(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

type overlapPredicate struct {
	column Column
	labels map[string]struct{}
}

func (p overlapPredicate) Column() Column { return p.column }

func (p overlapPredicate) Match(item *models.Item) bool {
	for _, l := range labels(item, p.column) {
		if _, ok := p.labels[l]; ok {
			return true
		}
	}
	return false
}

func buildOverlapPredicate(column Column, sel *models.SelectedData) Predicate {
	set := make(map[string]struct{}, len(sel.Points))
	for _, pt := range sel.Points {
		label := pt.Label
		if column == ColumnCountries && strings.TrimSpace(pt.Location) != "" {
			label = pt.Location
		}
		label = cleanLabel(label)
		if label == "" {
			continue
		}
		set[label] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return overlapPredicate{column: column, labels: set}
}

// ratingPredicate matches rated items inside [min, max] tenths inclusive.
type ratingPredicate struct {
	min, max int
}

func (p ratingPredicate) Column() Column { return ColumnRating }

func (p ratingPredicate) Match(item *models.Item) bool {
	if !item.Rated {
		return false
	}
	t := tenths(item.Rating)
	return t >= p.min && t <= p.max
}

func buildRatingPredicate(sel *models.SelectedData, tol Tolerance) Predicate {
	var xs []float64
	for _, pt := range sel.Points {
		if pt.X == nil || math.IsNaN(*pt.X) || math.IsInf(*pt.X, 0) {
			continue
		}
		xs = append(xs, *pt.X)
	}
	if len(xs) > 0 {
		lo, hi := xs[0], xs[0]
		for _, x := range xs[1:] {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		return ratingPredicate{min: tenths(lo - tol.Below), max: tenths(hi + tol.Above)}
	}

	lo, hi, ok := rangeBounds(sel)
	if !ok {
		return nil
	}
	return ratingPredicate{
		min: int(math.Ceil(lo*10 - 1e-9)),
		max: int(math.Floor(hi*10 + 1e-9)),
	}
}

// tenths rounds a rating to one decimal and returns it as an integer count of
// tenths, so comparisons never depend on float representation.
func tenths(f float64) int {
	return int(math.Round(f * 10))
}

func rangeBounds(sel *models.SelectedData) (lo, hi float64, ok bool) {
	if sel.Range == nil || len(sel.Range.X) < 2 {
		return 0, 0, false
	}
	lo, hi = sel.Range.X[0], sel.Range.X[1]
	for _, v := range []float64{lo, hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, false
		}
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}
