// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/marquee/internal/models"
)

func TestNewTable_HongKongAlsoCountsAsChina(t *testing.T) {
	table := NewTable([]models.Item{
		{Title: "a", Countries: []string{"Hong Kong"}},
		{Title: "b", Countries: []string{"Hong Kong", "China"}},
		{Title: "c", Countries: []string{"Japan"}},
	})

	assert.Equal(t, []string{"Hong Kong", "China"}, table.Item(0).Countries)
	assert.Equal(t, []string{"Hong Kong", "China"}, table.Item(1).Countries, "China must not be duplicated")
	assert.Equal(t, []string{"Japan"}, table.Item(2).Countries)
}

func TestNewTable_CleansLabels(t *testing.T) {
	table := NewTable([]models.Item{{
		Title:  "  Ame\u0301lie ",
		Genres: []string{" Drama", "Drama", "", "Romance "},
		Actors: []string{"  "},
	}})

	item := table.Item(0)
	assert.Equal(t, "Am\u00e9lie", item.Title)
	assert.Equal(t, []string{"Drama", "Romance"}, item.Genres)
	assert.Empty(t, item.Actors)
}

func TestNewTable_DoesNotAliasInput(t *testing.T) {
	items := []models.Item{{Title: "a", Year: 2000}}
	table := NewTable(items)
	items[0].Year = 1900

	require.Equal(t, 1, table.Len())
	assert.Equal(t, 2000, table.Item(0).Year)
}

func TestNewTable_UnratedRatingZeroed(t *testing.T) {
	table := NewTable([]models.Item{{Title: "a", Rating: 7.5, Rated: false}})
	assert.Zero(t, table.Item(0).Rating)
}

func TestTableAll(t *testing.T) {
	table := testTable()
	all := table.All()
	assert.Equal(t, table.Len(), all.Len())
	assert.Equal(t, "Alpha", all.Item(0).Title)
}
