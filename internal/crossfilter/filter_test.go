// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_NoPredicatesReturnsAll(t *testing.T) {
	table := testTable()
	assert.Equal(t, table.Len(), Filter(table, nil).Len())
	assert.Equal(t, table.Len(), Filter(table, []Predicate{nil, nil}).Len())
}

func TestFilter_Conjunction(t *testing.T) {
	table := testTable()
	tol := DefaultTolerance()
	preds := []Predicate{
		BuildPredicate(ColumnGenres, labelSel("Drama"), tol),
		BuildPredicate(ColumnDirectors, labelSel("Dee"), tol),
	}
	assert.Equal(t, []string{"Alpha", "Charlie"}, titles(Filter(table, preds)))
}

func TestFilter_EmptySelectionOnSameColumnIsIdentity(t *testing.T) {
	table := testTable()
	tol := DefaultTolerance()

	for _, col := range FilterOrder {
		var sel = labelSel("Drama")
		switch col {
		case ColumnYear:
			sel = labelSel("1999")
		case ColumnRating:
			sel = rangeSel(6, 9)
		case ColumnActors:
			sel = labelSel("Ann")
		case ColumnCountries:
			sel = labelSel("USA")
		case ColumnDirectors:
			sel = labelSel("Dee")
		}
		p := BuildPredicate(col, sel, tol)
		once := Filter(table, []Predicate{p})
		twice := Filter(table, []Predicate{p, BuildPredicate(col, nil, tol)})
		assert.Equal(t, titles(once), titles(twice), "column %s", col)
		assert.NotEqual(t, table.Len(), once.Len(), "column %s should constrain", col)
	}
}

func TestFilter_OrderIndependent(t *testing.T) {
	table := testTable()
	tol := DefaultTolerance()
	a := BuildPredicate(ColumnRating, rangeSel(7, 10), tol)
	b := BuildPredicate(ColumnCountries, labelSel("USA"), tol)

	assert.Equal(t, titles(Filter(table, []Predicate{a, b})), titles(Filter(table, []Predicate{b, a})))
	assert.Equal(t, []string{"Alpha", "Foxtrot"}, titles(Filter(table, []Predicate{a, b})))
}
