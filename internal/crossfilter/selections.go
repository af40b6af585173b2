// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"fmt"

	"github.com/tomtom215/marquee/internal/models"
)

// Selections holds at most one active selection per selectable chart.
// The zero value is an empty set; a chart without an entry is unfiltered.
type Selections struct {
	byChart map[Chart]*models.SelectedData
}

// NewSelections returns an empty selection set.
func NewSelections() Selections {
	return Selections{byChart: make(map[Chart]*models.SelectedData)}
}

// Set records sel as the selection of chart. An empty selection clears it.
func (s *Selections) Set(chart Chart, sel *models.SelectedData) error {
	if !chart.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownChart, string(chart))
	}
	if !chart.Selectable() {
		return fmt.Errorf("chart %q does not accept selections", string(chart))
	}
	if sel.IsEmpty() {
		s.Clear(chart)
		return nil
	}
	if s.byChart == nil {
		s.byChart = make(map[Chart]*models.SelectedData)
	}
	s.byChart[chart] = sel
	return nil
}

// Clear returns chart to the unfiltered state.
func (s *Selections) Clear(chart Chart) {
	delete(s.byChart, chart)
}

// Reset returns every chart to the unfiltered state.
func (s *Selections) Reset() {
	s.byChart = make(map[Chart]*models.SelectedData)
}

// Get returns the selection of chart, or nil.
func (s Selections) Get(chart Chart) *models.SelectedData {
	return s.byChart[chart]
}

// Without returns a copy of s minus the selection of chart.
func (s Selections) Without(chart Chart) Selections {
	out := NewSelections()
	for c, sel := range s.byChart {
		if c != chart {
			out.byChart[c] = sel
		}
	}
	return out
}

// Active lists the charts holding a selection, in display order.
func (s Selections) Active() []Chart {
	var out []Chart
	for _, c := range Charts {
		if _, ok := s.byChart[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of active selections.
func (s Selections) Len() int {
	return len(s.byChart)
}
