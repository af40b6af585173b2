// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/marquee/internal/models"
)

func TestBuildPredicate_EmptyMeansNoConstraint(t *testing.T) {
	tol := DefaultTolerance()
	cases := map[string]*models.SelectedData{
		"nil":          nil,
		"no points":    {},
		"short range":  {Range: &models.SelectedRange{X: []float64{1}}},
		"blank labels": labelSel("", "  "),
	}
	for name, sel := range cases {
		t.Run(name, func(t *testing.T) {
			for _, col := range FilterOrder {
				assert.Nil(t, BuildPredicate(col, sel, tol), "column %s", col)
			}
		})
	}
}

func TestBuildPredicate_MalformedYear(t *testing.T) {
	assert.Nil(t, BuildPredicate(ColumnYear, labelSel("nineteen"), DefaultTolerance()))
	assert.Nil(t, BuildPredicate(ColumnYear, &models.SelectedData{
		Points: []models.SelectedPoint{{X: ptr(1999.5)}},
	}, DefaultTolerance()))
	assert.Nil(t, BuildPredicate(ColumnRating, &models.SelectedData{
		Points: []models.SelectedPoint{{X: ptr(math.NaN())}},
	}, DefaultTolerance()))
}

func TestBuildPredicate_Year(t *testing.T) {
	table := testTable()

	p := BuildPredicate(ColumnYear, labelSel("1999", "2003.0"), DefaultTolerance())
	require.NotNil(t, p)
	assert.Equal(t, []string{"Alpha", "Bravo", "Delta", "Echo"}, titles(Filter(table, []Predicate{p})))

	p = BuildPredicate(ColumnYear, &models.SelectedData{
		Points: []models.SelectedPoint{{X: ptr(2001)}},
	}, DefaultTolerance())
	require.NotNil(t, p)
	assert.Equal(t, []string{"Charlie"}, titles(Filter(table, []Predicate{p})))

	p = BuildPredicate(ColumnYear, rangeSel(2000.5, 2003), DefaultTolerance())
	require.NotNil(t, p)
	assert.Equal(t, []string{"Charlie", "Delta", "Echo"}, titles(Filter(table, []Predicate{p})))
}

func TestBuildPredicate_SetOverlap(t *testing.T) {
	table := testTable()

	p := BuildPredicate(ColumnGenres, labelSel("Crime", "Comedy"), DefaultTolerance())
	require.NotNil(t, p)
	assert.Equal(t, []string{"Alpha", "Bravo", "Delta"}, titles(Filter(table, []Predicate{p})))

	p = BuildPredicate(ColumnActors, labelSel("Cat"), DefaultTolerance())
	require.NotNil(t, p)
	assert.Equal(t, []string{"Charlie", "Echo"}, titles(Filter(table, []Predicate{p})))
}

func TestBuildPredicate_CountriesUseLocation(t *testing.T) {
	table := testTable()
	sel := &models.SelectedData{Points: []models.SelectedPoint{{Label: "ignored", Location: "China"}}}

	p := BuildPredicate(ColumnCountries, sel, DefaultTolerance())
	require.NotNil(t, p)
	assert.Equal(t, []string{"Charlie"}, titles(Filter(table, []Predicate{p})))
}

func TestBuildPredicate_RatingPointsCoverWholeBin(t *testing.T) {
	table := NewTable([]models.Item{
		{Title: "5.9", Rating: 5.9, Rated: true},
		{Title: "6.0", Rating: 6.0, Rated: true},
		{Title: "6.2", Rating: 6.2, Rated: true},
		{Title: "6.3", Rating: 6.3, Rated: true},
		{Title: "unrated"},
	})

	// Bin [6.0, 6.3) reports its centre.
	sel := &models.SelectedData{Points: []models.SelectedPoint{{X: ptr(6.15)}}}
	p := BuildPredicate(ColumnRating, sel, DefaultTolerance())
	require.NotNil(t, p)
	assert.Equal(t, []string{"6.0", "6.2"}, titles(Filter(table, []Predicate{p})))
}

func TestBuildPredicate_RatingRange(t *testing.T) {
	table := testTable()
	p := BuildPredicate(ColumnRating, rangeSel(8.1, 6.2), DefaultTolerance())
	require.NotNil(t, p)
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, titles(Filter(table, []Predicate{p})))
}

func TestBuildPredicate_UnratedNeverMatches(t *testing.T) {
	table := testTable()
	p := BuildPredicate(ColumnRating, rangeSel(0, 10), DefaultTolerance())
	require.NotNil(t, p)
	assert.NotContains(t, titles(Filter(table, []Predicate{p})), "Echo")
}
