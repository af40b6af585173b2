// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"github.com/tomtom215/marquee/internal/models"
)

// Column identifies a filterable attribute of an Item.
type Column string

// Filterable columns.
const (
	ColumnNone      Column = ""
	ColumnYear      Column = "year"
	ColumnDirectors Column = "directors"
	ColumnActors    Column = "actors"
	ColumnCountries Column = "countries"
	ColumnGenres    Column = "genres"
	ColumnRating    Column = "rating"
)

// FilterOrder is the fixed order in which predicates are evaluated.
var FilterOrder = []Column{
	ColumnYear,
	ColumnDirectors,
	ColumnActors,
	ColumnCountries,
	ColumnGenres,
	ColumnRating,
}

// SetValued reports whether the column holds a set of labels per item.
func (c Column) SetValued() bool {
	switch c {
	case ColumnDirectors, ColumnActors, ColumnCountries, ColumnGenres:
		return true
	default:
		return false
	}
}

// order returns the position of c in FilterOrder, or len(FilterOrder) if absent.
func (c Column) order() int {
	for i, col := range FilterOrder {
		if col == c {
			return i
		}
	}
	return len(FilterOrder)
}

// labels returns the set members of a set-valued column.
func labels(item *models.Item, c Column) []string {
	switch c {
	case ColumnDirectors:
		return item.Directors
	case ColumnActors:
		return item.Actors
	case ColumnCountries:
		return item.Countries
	case ColumnGenres:
		return item.Genres
	default:
		return nil
	}
}
