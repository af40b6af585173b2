// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/crossfilter"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/middleware"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// scopeDashboard labels whole-dashboard renders in metrics and cache keys.
const scopeDashboard = "dashboard"

// LibrarySummary returns totals for the loaded library.
func (h *Handler) LibrarySummary(w http.ResponseWriter, r *http.Request) {
	summary := h.engine.Summary(h.library.Source, h.library.LoadedAt)
	respondSuccess(w, summary, models.Metadata{})
}

// Dashboard returns the unfiltered dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.serveDashboard(w, r, crossfilter.NewSelections())
}

// DashboardQuery returns every chart for the posted selection state.
func (h *Handler) DashboardQuery(w http.ResponseWriter, r *http.Request) {
	sel, ok := h.parseSelections(w, r)
	if !ok {
		return
	}
	h.serveDashboard(w, r, sel)
}

// DashboardReset clears every selection and returns the unfiltered dashboard.
// Any request body is ignored.
func (h *Handler) DashboardReset(w http.ResponseWriter, r *http.Request) {
	sel := crossfilter.NewSelections()
	dash, cached, elapsed := h.renderDashboard(sel)
	setCacheHeader(w, cached)

	logging.Ctx(r.Context()).Debug().Msg("Dashboard selections reset")
	respondSuccess(w, DashboardResetResponse{
		Selections: map[string]*models.SelectedData{},
		Dashboard:  dash,
	}, models.Metadata{QueryTimeMS: elapsed.Milliseconds(), Cached: cached})
}

// Chart returns a single chart for the posted selection state.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "chart")
	if verr := validation.ValidateVar("chart", name, "required,chart"); verr != nil {
		apiErr := verr.ToAPIError()
		respondErrorWithDetails(w, http.StatusNotFound, ErrCodeNotFound, apiErr.Message, apiErr.Details, nil)
		return
	}
	chart := crossfilter.Chart(name)

	sel, ok := h.parseSelections(w, r)
	if !ok {
		return
	}

	key := cache.GenerateKey(string(chart), cacheParams(sel))
	if data, hit := h.cacheGet(key); hit {
		setCacheHeader(w, true)
		respondSuccess(w, data, models.Metadata{Cached: true})
		return
	}

	start := time.Now()
	data, err := h.engine.Render(chart, sel)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to render chart", err)
		return
	}
	elapsed := time.Since(start)
	metrics.RecordDashboardRender(string(chart), sel.Len(), elapsed)
	h.cacheSet(key, data)

	setCacheHeader(w, false)
	respondSuccess(w, data, models.Metadata{QueryTimeMS: elapsed.Milliseconds()})
}

// parseSelections decodes and validates the request body. On failure it
// writes the error response and returns false.
func (h *Handler) parseSelections(w http.ResponseWriter, r *http.Request) (crossfilter.Selections, bool) {
	req, err := decodeDashboardRequest(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON request body", nil)
		return crossfilter.Selections{}, false
	}

	if apiErr := validateRequest(req); apiErr != nil {
		respondErrorWithDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return crossfilter.Selections{}, false
	}

	sel, err := req.selections()
	if err != nil {
		// Set only rejects charts the validator already refused.
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return crossfilter.Selections{}, false
	}
	return sel, true
}

func (h *Handler) serveDashboard(w http.ResponseWriter, r *http.Request, sel crossfilter.Selections) {
	dash, cached, elapsed := h.renderDashboard(sel)
	setCacheHeader(w, cached)

	logging.Ctx(r.Context()).Debug().
		Strs("active", dash.Active).
		Int("filtered_rows", dash.FilteredRows).
		Bool("cached", cached).
		Msg("Dashboard rendered")

	respondSuccess(w, dash, models.Metadata{QueryTimeMS: elapsed.Milliseconds(), Cached: cached})
}

// renderDashboard returns the dashboard for sel from the cache or by
// recomputing it.
func (h *Handler) renderDashboard(sel crossfilter.Selections) (models.Dashboard, bool, time.Duration) {
	key := cache.GenerateKey(scopeDashboard, cacheParams(sel))
	if v, hit := h.cacheGet(key); hit {
		if dash, ok := v.(models.Dashboard); ok {
			return dash, true, 0
		}
	}

	start := time.Now()
	dash := h.engine.RenderAll(sel)
	elapsed := time.Since(start)
	metrics.RecordDashboardRender(scopeDashboard, sel.Len(), elapsed)
	h.cacheSet(key, dash)
	return dash, false, elapsed
}

func (h *Handler) cacheGet(key string) (interface{}, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(key)
}

func (h *Handler) cacheSet(key string, v interface{}) {
	if h.cache != nil {
		h.cache.Set(key, v)
	}
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set(middleware.CacheStatusHeader, "HIT")
		return
	}
	w.Header().Set(middleware.CacheStatusHeader, "MISS")
}
