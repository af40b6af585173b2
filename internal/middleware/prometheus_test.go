// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/metrics"
)

func newTestRouter(mw func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/api/v1/charts/{chart}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func TestPrometheusMetrics(t *testing.T) {
	router := newTestRouter(PrometheusMetrics)

	tests := []struct {
		name     string
		path     string
		endpoint string
		status   string
	}{
		{"route pattern label", "/api/v1/charts/genre_bar_chart", "/api/v1/charts/{chart}", "418"},
		{"implicit 200", "/ok", "/ok", "200"},
		{"unmatched route", "/nope", unmatchedRoute, "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, tt.endpoint, tt.status)
			before := testutil.ToFloat64(counter)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("api_requests_total{endpoint=%q,status_code=%q} = %v, want %v",
					tt.endpoint, tt.status, got, before+1)
			}
		})
	}
}

func TestPrometheusMetrics_ActiveRequestsBalanced(t *testing.T) {
	router := newTestRouter(PrometheusMetrics)
	before := testutil.ToFloat64(metrics.APIActiveRequests)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	if got := testutil.ToFloat64(metrics.APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestStatusWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	sw.WriteHeader(http.StatusCreated)
	sw.WriteHeader(http.StatusInternalServerError)

	if sw.statusCode != http.StatusCreated {
		t.Errorf("statusCode = %d, want %d", sw.statusCode, http.StatusCreated)
	}
	if sw.Unwrap() != rec {
		t.Error("Unwrap() should return the wrapped writer")
	}
}

func TestRoutePattern_NoRouter(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	if got := routePattern(r); got != unmatchedRoute {
		t.Errorf("routePattern() = %q, want %q", got, unmatchedRoute)
	}
}
