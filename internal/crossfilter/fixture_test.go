// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"github.com/tomtom215/marquee/internal/models"
)

func ptr(f float64) *float64 { return &f }

func labelSel(labels ...string) *models.SelectedData {
	sel := &models.SelectedData{}
	for _, l := range labels {
		sel.Points = append(sel.Points, models.SelectedPoint{Label: l})
	}
	return sel
}

func rangeSel(lo, hi float64) *models.SelectedData {
	return &models.SelectedData{Range: &models.SelectedRange{X: []float64{lo, hi}}}
}

// testItems is a small library with overlapping tags.
func testItems() []models.Item {
	return []models.Item{
		{Title: "Alpha", Year: 1999, Rating: 8.1, Rated: true, Genres: []string{"Drama", "Crime"}, Countries: []string{"USA"}, Actors: []string{"Ann", "Bob"}, Directors: []string{"Dee"}, Studio: "Big"},
		{Title: "Bravo", Year: 1999, Rating: 6.2, Rated: true, Genres: []string{"Comedy"}, Countries: []string{"UK"}, Actors: []string{"Bob"}, Directors: []string{"Eve"}, Studio: "Small"},
		{Title: "Charlie", Year: 2001, Rating: 7.4, Rated: true, Genres: []string{"Drama"}, Countries: []string{"Hong Kong"}, Actors: []string{"Cat", "Ann"}, Directors: []string{"Dee"}},
		{Title: "Delta", Year: 2003, Rating: 5.0, Rated: true, Genres: []string{"Action", "Crime"}, Countries: []string{"USA", "UK"}, Actors: []string{"Ann"}, Directors: []string{"Fay"}, Studio: "Big"},
		{Title: "Echo", Year: 2003, Genres: []string{"Drama"}, Countries: []string{"France"}, Actors: []string{"Cat"}, Directors: []string{"Eve"}},
		{Title: "Foxtrot", Year: 0, Rating: 9.0, Rated: true, Genres: nil, Countries: []string{"USA"}, Actors: nil, Directors: []string{"Dee"}},
	}
}

func testTable() *Table {
	return NewTable(testItems())
}

func titles(v View) []string {
	out := make([]string, 0, v.Len())
	v.Each(func(item *models.Item) { out = append(out, item.Title) })
	return out
}
