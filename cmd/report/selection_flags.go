// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/crossfilter"
	"github.com/tomtom215/marquee/internal/models"
)

// selectionFlags maps command-line filters onto chart selections, the same
// way a click on the matching chart would.
type selectionFlags struct {
	years     []int
	genres    []string
	countries []string
	actors    []string
	directors []string
	ratingMin float64
	ratingMax float64
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntSliceVar(&f.years, "year", nil, "Select release years (repeatable)")
	flags.StringSliceVar(&f.genres, "genre", nil, "Select genres (repeatable)")
	flags.StringSliceVar(&f.countries, "country", nil, "Select countries (repeatable)")
	flags.StringSliceVar(&f.actors, "actor", nil, "Select actors (repeatable)")
	flags.StringSliceVar(&f.directors, "director", nil, "Select directors (repeatable)")
	flags.Float64Var(&f.ratingMin, "rating-min", 0, "Lower bound of a rating range selection")
	flags.Float64Var(&f.ratingMax, "rating-max", 10, "Upper bound of a rating range selection")
}

// selections builds the selection set. A rating range is only selected when
// one of the rating flags was given.
func (f *selectionFlags) selections(cmd *cobra.Command) (crossfilter.Selections, error) {
	sel := crossfilter.NewSelections()

	years := make([]string, len(f.years))
	for i, y := range f.years {
		years[i] = strconv.Itoa(y)
	}

	labelled := []struct {
		chart  crossfilter.Chart
		labels []string
	}{
		{crossfilter.ChartYear, years},
		{crossfilter.ChartGenre, f.genres},
		{crossfilter.ChartCountry, f.countries},
		{crossfilter.ChartActors, f.actors},
		{crossfilter.ChartDirectors, f.directors},
	}
	for _, l := range labelled {
		if err := sel.Set(l.chart, labelSelection(l.labels)); err != nil {
			return sel, err
		}
	}

	if cmd.Flags().Changed("rating-min") || cmd.Flags().Changed("rating-max") {
		if f.ratingMax < f.ratingMin {
			return sel, fmt.Errorf("--rating-max %.1f is below --rating-min %.1f", f.ratingMax, f.ratingMin)
		}
		rng := &models.SelectedData{Range: &models.SelectedRange{X: []float64{f.ratingMin, f.ratingMax}}}
		if err := sel.Set(crossfilter.ChartRatings, rng); err != nil {
			return sel, err
		}
	}
	return sel, nil
}

func labelSelection(labels []string) *models.SelectedData {
	if len(labels) == 0 {
		return nil
	}
	points := make([]models.SelectedPoint, len(labels))
	for i, l := range labels {
		points[i] = models.SelectedPoint{Label: l}
	}
	return &models.SelectedData{Points: points}
}
