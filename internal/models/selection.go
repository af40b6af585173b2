// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// SelectedData is the selection payload a chart emits after a click, lasso or
// box select. The shape follows the Plotly "selectedData" event so that a
// browser front end can forward it unchanged.
//
// Example point selection on the genre chart:
//
//	{"points": [{"label": "Drama"}, {"label": "Comedy"}]}
//
// Example range selection on the ratings histogram:
//
//	{"range": {"x": [6.5, 8.2]}}
type SelectedData struct {
	Points []SelectedPoint `json:"points,omitempty" validate:"max=5000,dive"`
	Range  *SelectedRange  `json:"range,omitempty"`
}

// SelectedPoint is one chosen mark on a chart.
//
// Bar charts carry the category in Label, the choropleth carries the country
// name in Location, and the ratings histogram carries the bin centre in X.
type SelectedPoint struct {
	Label    string   `json:"label,omitempty" validate:"max=512"`
	Location string   `json:"location,omitempty" validate:"max=512"`
	X        *float64 `json:"x,omitempty"`
}

// UnmarshalJSON decodes a point leniently. Label and location may be strings
// or numbers (the year chart sends the year as a number); x may be a number
// or a numeric string. Values of any other shape are dropped, and a point
// that is not an object decodes to the zero point, which selects nothing.
func (p *SelectedPoint) UnmarshalJSON(data []byte) error {
	var raw struct {
		Label    json.RawMessage `json:"label"`
		Location json.RawMessage `json:"location"`
		X        json.RawMessage `json:"x"`
	}
	*p = SelectedPoint{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	p.Label = textValue(raw.Label)
	p.Location = textValue(raw.Location)
	if x, ok := numberValue(raw.X); ok {
		p.X = &x
	}
	return nil
}

// textValue returns a JSON string, or the literal text of a JSON number.
func textValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// numberValue accepts a finite JSON number or a string holding one.
func numberValue(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// SelectedRange is a box selection along the x axis.
type SelectedRange struct {
	X []float64 `json:"x"`
}

// IsEmpty reports whether the payload carries no usable selection.
func (s *SelectedData) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Points) == 0 && (s.Range == nil || len(s.Range.X) < 2)
}
