// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/crossfilter"
	"github.com/tomtom215/marquee/internal/middleware"
	"github.com/tomtom215/marquee/internal/models"
)

// envelope mirrors models.APIResponse with a raw data field.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testItems() []models.Item {
	return []models.Item{
		{Title: "Alpha", Year: 1999, Rating: 8.1, Rated: true, Genres: []string{"Drama", "Crime"}, Countries: []string{"USA"}, Actors: []string{"Ann", "Bob"}, Directors: []string{"Dee"}},
		{Title: "Bravo", Year: 1999, Rating: 6.2, Rated: true, Genres: []string{"Comedy"}, Countries: []string{"UK"}, Actors: []string{"Bob"}, Directors: []string{"Eve"}},
		{Title: "Charlie", Year: 2001, Rating: 7.4, Rated: true, Genres: []string{"Drama"}, Countries: []string{"Hong Kong"}, Actors: []string{"Cat", "Ann"}, Directors: []string{"Dee"}},
		{Title: "Delta", Year: 2003, Rating: 5.0, Rated: true, Genres: []string{"Action", "Crime"}, Countries: []string{"USA", "UK"}, Actors: []string{"Ann"}, Directors: []string{"Fay"}},
		{Title: "Echo", Year: 2003, Genres: []string{"Drama"}, Countries: []string{"France"}, Actors: []string{"Cat"}, Directors: []string{"Eve"}},
		{Title: "Foxtrot", Year: 0, Rating: 9.0, Rated: true, Countries: []string{"USA"}, Directors: []string{"Dee"}},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{Enabled: true, TTL: time.Minute},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
		},
	}
}

func newTestHandler(t *testing.T, cfg *config.Config) *Handler {
	t.Helper()
	engine := crossfilter.NewEngine(crossfilter.NewTable(testItems()), crossfilter.DefaultOptions())
	return NewHandler(engine, cfg, LibraryInfo{Source: "csv", LoadedAt: time.Unix(1700000000, 0).UTC(), Version: "test"})
}

func newTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	h := newTestHandler(t, cfg)
	return NewRouter(h, NewChiMiddlewareFromConfig(&cfg.Security)).SetupChi()
}

func doRequest(t *testing.T, srv http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("failed to decode data %s: %v", env.Data, err)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/health", http.StatusOK},
		{"/api/v1/health/live", http.StatusOK},
		{"/api/v1/health/ready", http.StatusOK},
		{"/api/v1/health/performance", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, env := doRequest(t, srv, http.MethodGet, tt.path, "")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if env.Status != "success" {
				t.Errorf("envelope status = %q, want success", env.Status)
			}
		})
	}
}

func TestHealth_ReportsLibrary(t *testing.T) {
	srv := newTestServer(t, testConfig())
	_, env := doRequest(t, srv, http.MethodGet, "/api/v1/health", "")

	var health models.HealthStatus
	decodeData(t, env, &health)
	if health.Status != "healthy" || health.Items != 6 || health.Source != "csv" || health.Version != "test" {
		t.Errorf("health = %+v", health)
	}
	if health.Cache == nil {
		t.Error("expected cache status when caching is enabled")
	}
}

func TestHealthReady_NoLibrary(t *testing.T) {
	h := NewHandler(nil, testConfig(), LibraryInfo{})
	rec := httptest.NewRecorder()
	h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestLibrarySummary(t *testing.T) {
	srv := newTestServer(t, testConfig())
	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/library/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var summary models.LibrarySummary
	decodeData(t, env, &summary)
	if summary.Items != 6 {
		t.Errorf("Items = %d, want 6", summary.Items)
	}
	if summary.Distinct.Genres != 4 {
		t.Errorf("Distinct.Genres = %d, want 4", summary.Distinct.Genres)
	}
	if summary.FirstYear != 1999 || summary.LastYear != 2003 {
		t.Errorf("year span = %d-%d, want 1999-2003", summary.FirstYear, summary.LastYear)
	}
}

func TestDashboard_Unfiltered(t *testing.T) {
	srv := newTestServer(t, testConfig())
	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var dash models.Dashboard
	decodeData(t, env, &dash)
	if dash.TotalRows != 6 || dash.FilteredRows != 6 {
		t.Errorf("rows = %d/%d, want 6/6", dash.FilteredRows, dash.TotalRows)
	}
	if len(dash.Charts) != len(crossfilter.Charts) {
		t.Errorf("len(Charts) = %d, want %d", len(dash.Charts), len(crossfilter.Charts))
	}
	if len(dash.Active) != 0 {
		t.Errorf("Active = %v, want none", dash.Active)
	}
}

func TestDashboard_Cache(t *testing.T) {
	srv := newTestServer(t, testConfig())
	body := `{"selections": {"genre_bar_chart": {"points": [{"label": "Drama"}]}}}`

	rec1, env1 := doRequest(t, srv, http.MethodPost, "/api/v1/dashboard", body)
	rec2, env2 := doRequest(t, srv, http.MethodPost, "/api/v1/dashboard", body)

	if got := rec1.Header().Get(middleware.CacheStatusHeader); got != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", got)
	}
	if got := rec2.Header().Get(middleware.CacheStatusHeader); got != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", got)
	}
	if env1.Metadata.Cached || !env2.Metadata.Cached {
		t.Errorf("metadata.cached = %v/%v, want false/true", env1.Metadata.Cached, env2.Metadata.Cached)
	}
}

func TestDashboard_CacheDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false
	srv := newTestServer(t, cfg)

	doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	if got := rec.Header().Get(middleware.CacheStatusHeader); got != "MISS" {
		t.Errorf("X-Cache = %q, want MISS", got)
	}
	if env.Metadata.Cached {
		t.Error("metadata.cached = true with cache disabled")
	}
}

func TestDashboardQuery_LinkedFiltering(t *testing.T) {
	srv := newTestServer(t, testConfig())
	body := `{"selections": {"genre_bar_chart": {"points": [{"label": "Drama"}]}}}`

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/dashboard", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var dash models.Dashboard
	decodeData(t, env, &dash)
	if dash.FilteredRows != 3 {
		t.Errorf("FilteredRows = %d, want 3", dash.FilteredRows)
	}
	if len(dash.Active) != 1 || dash.Active[0] != "genre_bar_chart" {
		t.Errorf("Active = %v, want [genre_bar_chart]", dash.Active)
	}

	// The genre chart ignores its own selection.
	genres := dash.Charts["genre_bar_chart"]
	if genres.Rows != 6 || len(genres.Counts) != 4 {
		t.Errorf("genre chart rows=%d counts=%d, want 6 rows and 4 genres", genres.Rows, len(genres.Counts))
	}

	years := dash.Charts["year_bar_chart"]
	if years.Rows != 3 {
		t.Errorf("year chart rows = %d, want 3", years.Rows)
	}
	if len(years.FilteredBy) != 1 || years.FilteredBy[0] != "genre_bar_chart" {
		t.Errorf("year chart FilteredBy = %v", years.FilteredBy)
	}
}

func TestDashboardQuery_Errors(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"selections":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"wrong type", `{"selections": []}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown chart", `{"selections": {"pie_chart": {"points": [{"label": "x"}]}}}`, http.StatusBadRequest, ErrCodeValidation},
		{"non-selectable chart", `{"selections": {"rating_table": {"points": [{"label": "x"}]}}}`, http.StatusBadRequest, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/dashboard", tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want code %s", env.Error, tt.code)
			}
			if env.Status != "error" {
				t.Errorf("envelope status = %q, want error", env.Status)
			}
		})
	}
}

func TestDashboardQuery_LenientSelections(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name     string
		body     string
		filtered int
		active   []string
	}{
		{"empty body", "", 6, nil},
		{"empty object", `{}`, 6, nil},
		{"null selection", `{"selections": {"genre_bar_chart": null}}`, 6, nil},
		{"point without values", `{"selections": {"genre_bar_chart": {"points": [{}]}}}`, 6, []string{"genre_bar_chart"}},
		{"short range", `{"selections": {"ratings_histogram": {"range": {"x": [5]}}}}`, 6, nil},
		{"numeric year label", `{"selections": {"year_bar_chart": {"points": [{"label": 1999, "x": 1999, "curveNumber": 0}]}}}`, 2, []string{"year_bar_chart"}},
		{"string x", `{"selections": {"ratings_histogram": {"points": [{"x": "8.1"}]}}}`, 1, []string{"ratings_histogram"}},
		{"non-numeric x", `{"selections": {"ratings_histogram": {"points": [{"x": "abc"}]}}}`, 6, []string{"ratings_histogram"}},
		{"points not an array", `{"selections": {"genre_bar_chart": {"points": "Drama"}}}`, 6, nil},
		{"valid genre with malformed rating", `{"selections": {"genre_bar_chart": {"points": [{"label": "Drama"}]}, "ratings_histogram": {"points": [{"x": "abc"}]}}}`, 3, []string{"genre_bar_chart", "ratings_histogram"}},
		{"valid genre with undecodable rating", `{"selections": {"genre_bar_chart": {"points": [{"label": "Drama"}]}, "ratings_histogram": {"range": {"x": ["a", "b"]}}}}`, 3, []string{"genre_bar_chart"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/dashboard", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			var dash models.Dashboard
			decodeData(t, env, &dash)
			if dash.FilteredRows != tt.filtered {
				t.Errorf("FilteredRows = %d, want %d", dash.FilteredRows, tt.filtered)
			}
			if len(dash.Active) != len(tt.active) {
				t.Fatalf("Active = %v, want %v", dash.Active, tt.active)
			}
			for i := range tt.active {
				if dash.Active[i] != tt.active[i] {
					t.Errorf("Active = %v, want %v", dash.Active, tt.active)
				}
			}
		})
	}
}

func TestDashboardReset(t *testing.T) {
	srv := newTestServer(t, testConfig())
	body := `{"selections": {"genre_bar_chart": {"points": [{"label": "Drama"}]}}}`

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/dashboard/reset", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var reset DashboardResetResponse
	decodeData(t, env, &reset)
	if len(reset.Selections) != 0 {
		t.Errorf("Selections = %v, want empty", reset.Selections)
	}
	if reset.Dashboard.FilteredRows != reset.Dashboard.TotalRows {
		t.Errorf("FilteredRows = %d, want %d", reset.Dashboard.FilteredRows, reset.Dashboard.TotalRows)
	}

	_, unfiltered := doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	var dash models.Dashboard
	decodeData(t, unfiltered, &dash)
	for name, chart := range dash.Charts {
		if chart.Rows != reset.Dashboard.Charts[name].Rows {
			t.Errorf("chart %s rows = %d after reset, want %d", name, reset.Dashboard.Charts[name].Rows, chart.Rows)
		}
	}
}

func TestChart(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/charts/popular_actor_bar",
		`{"selections": {"year_bar_chart": {"points": [{"label": "1999"}]}}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var chart models.ChartData
	decodeData(t, env, &chart)
	if chart.Chart != "popular_actor_bar" {
		t.Errorf("Chart = %q", chart.Chart)
	}
	// 1999: Alpha (Ann, Bob) and Bravo (Bob).
	if len(chart.Counts) != 2 || chart.Counts[0].Label != "Bob" || chart.Counts[0].Count != 2 {
		t.Errorf("Counts = %+v, want Bob=2 first", chart.Counts)
	}
}

func TestChart_NonSelectableIsRenderable(t *testing.T) {
	srv := newTestServer(t, testConfig())
	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/charts/rating_table", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var chart models.ChartData
	decodeData(t, env, &chart)
	if len(chart.TopRated) == 0 || chart.TopRated[0].Title != "Foxtrot" {
		t.Errorf("TopRated = %+v, want Foxtrot first", chart.TopRated)
	}
}

func TestChart_UnknownChart(t *testing.T) {
	srv := newTestServer(t, testConfig())
	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/charts/pie_chart", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Fatalf("error = %+v, want NOT_FOUND", env.Error)
	}
	if env.Error.Details["field"] != "chart" || env.Error.Details["value"] != "pie_chart" {
		t.Errorf("details = %v, want chart field and value", env.Error.Details)
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/nothing", "")
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route: status=%d error=%+v", rec.Code, env.Error)
	}

	rec, env = doRequest(t, srv, http.MethodDelete, "/api/v1/dashboard", "")
	if rec.Code != http.StatusMethodNotAllowed || env.Error == nil || env.Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("wrong method: status=%d error=%+v", rec.Code, env.Error)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())
	doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, name := range []string{"api_requests_total", "dashboard_renders_total"} {
		if !strings.Contains(rec.Body.String(), name) {
			t.Errorf("/metrics missing %s", name)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"a":1}`))
	b := generateETag([]byte(`{"a":2}`))
	if a == b {
		t.Error("different payloads should give different ETags")
	}
	if !strings.HasPrefix(a, `"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %s should be quoted", a)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	if got := sanitizeLogValue("a\nb\x7f"); got != `a\x0ab\x7f` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}
