// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/crossfilter"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

// maxRequestBodyBytes bounds selection payloads. Lasso selections on the
// actor charts can carry a few thousand points.
const maxRequestBodyBytes = 1 << 20

// DashboardRequest is the body of POST /dashboard and POST /charts/{chart}.
// Keys are chart names; a null or empty value means the chart has no
// selection.
type DashboardRequest struct {
	Selections map[string]*models.SelectedData `json:"selections" validate:"max=16,dive,keys,selectable_chart,endkeys"`
}

// DashboardResetResponse is returned by POST /dashboard/reset.
type DashboardResetResponse struct {
	Selections map[string]*models.SelectedData `json:"selections"`
	Dashboard  models.Dashboard                `json:"dashboard"`
}

// decodeDashboardRequest reads and decodes the request body.
// An absent or empty body yields an empty request.
//
// Each selection is decoded on its own. A value that cannot be decoded is
// logged and kept as a nil selection, so the chart name is still validated
// but the chart stays unfiltered and the other selections still apply.
func decodeDashboardRequest(w http.ResponseWriter, r *http.Request) (*DashboardRequest, error) {
	req := &DashboardRequest{}
	if r.Body == nil || r.Body == http.NoBody {
		return req, nil
	}

	var raw struct {
		Selections map[string]json.RawMessage `json:"selections"`
	}
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return nil, err
	}
	if raw.Selections == nil {
		return req, nil
	}

	req.Selections = make(map[string]*models.SelectedData, len(raw.Selections))
	for name, value := range raw.Selections {
		var data *models.SelectedData
		if err := json.Unmarshal(value, &data); err != nil {
			logging.Ctx(r.Context()).Debug().
				Str("chart", sanitizeLogValue(name)).
				Err(err).
				Msg("Ignoring malformed selection")
			data = nil
		}
		req.Selections[name] = data
	}
	return req, nil
}

// selections converts the validated request into a selection set.
// Empty payloads are dropped.
func (req *DashboardRequest) selections() (crossfilter.Selections, error) {
	sel := crossfilter.NewSelections()
	for name, data := range req.Selections {
		if err := sel.Set(crossfilter.Chart(name), data); err != nil {
			return crossfilter.Selections{}, err
		}
	}
	return sel, nil
}

// cacheParams returns the active selections keyed by chart name, the form
// used to derive cache keys. Equal selection states give equal maps.
func cacheParams(sel crossfilter.Selections) map[string]*models.SelectedData {
	params := make(map[string]*models.SelectedData, sel.Len())
	for _, c := range sel.Active() {
		params[string(c)] = sel.Get(c)
	}
	return params
}
