// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/marquee/internal/models"
)

const (
	countryHongKong = "Hong Kong"
	countryChina    = "China"
)

// Table is the immutable in-memory library. It is built once at startup and
// shared read-only by every request.
type Table struct {
	items []models.Item
}

// NewTable copies and normalizes items into a Table.
//
// Normalization trims and NFC-normalizes labels, drops empty labels, removes
// duplicate members within one set and adds "China" to any item whose
// countries contain "Hong Kong".
func NewTable(items []models.Item) *Table {
	normalized := make([]models.Item, len(items))
	for i := range items {
		normalized[i] = NormalizeItem(items[i])
	}
	return &Table{items: normalized}
}

// NormalizeItem returns a normalized copy of item.
func NormalizeItem(item models.Item) models.Item {
	item.Title = cleanLabel(item.Title)
	item.Studio = cleanLabel(item.Studio)
	item.Genres = cleanLabels(item.Genres)
	item.Actors = cleanLabels(item.Actors)
	item.Directors = cleanLabels(item.Directors)
	item.Countries = withChinaForHongKong(cleanLabels(item.Countries))
	if !item.Rated {
		item.Rating = 0
	}
	return item
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.items)
}

// Item returns row i. Callers must not modify the returned item.
func (t *Table) Item(i int) *models.Item {
	return &t.items[i]
}

// All returns a view over every row.
func (t *Table) All() View {
	rows := make([]int, len(t.items))
	for i := range rows {
		rows[i] = i
	}
	return View{table: t, rows: rows}
}

// View is a filtered subset of a Table, held as row indices.
type View struct {
	table *Table
	rows  []int
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	return len(v.rows)
}

// Item returns the i-th row of the view.
func (v View) Item(i int) *models.Item {
	return v.table.Item(v.rows[i])
}

// Each calls fn for every row in table order.
func (v View) Each(fn func(item *models.Item)) {
	for _, row := range v.rows {
		fn(v.table.Item(row))
	}
}

func cleanLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func cleanLabels(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = cleanLabel(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func withChinaForHongKong(countries []string) []string {
	hasHongKong := false
	for _, c := range countries {
		if c == countryChina {
			return countries
		}
		if c == countryHongKong {
			hasHongKong = true
		}
	}
	if !hasHongKong {
		return countries
	}
	return append(countries, countryChina)
}
