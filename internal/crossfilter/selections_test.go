// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/marquee/internal/models"
)

func TestSelections_SetClearReset(t *testing.T) {
	sel := NewSelections()
	require.NoError(t, sel.Set(ChartGenre, labelSel("Drama")))
	require.NoError(t, sel.Set(ChartYear, labelSel("1999")))
	assert.Equal(t, []Chart{ChartYear, ChartGenre}, sel.Active())

	sel.Clear(ChartYear)
	assert.Equal(t, []Chart{ChartGenre}, sel.Active())

	require.NoError(t, sel.Set(ChartGenre, &models.SelectedData{}))
	assert.Zero(t, sel.Len(), "empty selection clears the chart")

	for _, c := range SelectableCharts() {
		require.NoError(t, sel.Set(c, labelSel("x")))
	}
	sel.Reset()
	assert.Zero(t, sel.Len())
	assert.Nil(t, sel.Get(ChartGenre))
}

func TestSelections_ZeroValueUsable(t *testing.T) {
	var sel Selections
	assert.Zero(t, sel.Len())
	require.NoError(t, sel.Set(ChartActors, labelSel("Ann")))
	assert.Equal(t, 1, sel.Len())
}

func TestSelections_Without(t *testing.T) {
	sel := NewSelections()
	require.NoError(t, sel.Set(ChartGenre, labelSel("Drama")))
	require.NoError(t, sel.Set(ChartActors, labelSel("Ann")))

	rest := sel.Without(ChartGenre)
	assert.Equal(t, []Chart{ChartActors}, rest.Active())
	assert.Equal(t, 2, sel.Len(), "original untouched")
}

func TestSelections_SetRejectsUnknownAndReadOnly(t *testing.T) {
	sel := NewSelections()

	err := sel.Set(Chart("pie"), labelSel("x"))
	assert.True(t, errors.Is(err, ErrUnknownChart))

	assert.Error(t, sel.Set(ChartRatingTable, labelSel("x")))
	assert.Error(t, sel.Set(ChartActorRace, labelSel("x")))
}

func TestParseChart(t *testing.T) {
	c, err := ParseChart("ratings_histogram")
	require.NoError(t, err)
	assert.Equal(t, ChartRatings, c)
	assert.Equal(t, ColumnRating, c.Column())

	_, err = ParseChart("nope")
	assert.ErrorIs(t, err, ErrUnknownChart)
}
