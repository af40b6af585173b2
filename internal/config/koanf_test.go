// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Library.Source != "csv" {
		t.Errorf("Library.Source = %q, want csv", cfg.Library.Source)
	}
	if cfg.Library.CSVPath != "data/library.csv" {
		t.Errorf("Library.CSVPath = %q, want data/library.csv", cfg.Library.CSVPath)
	}
	if cfg.Plex.PageSize != 100 {
		t.Errorf("Plex.PageSize = %d, want 100", cfg.Plex.PageSize)
	}
	if cfg.Dashboard.TopK != 10 || cfg.Dashboard.TableRows != 12 || cfg.Dashboard.HoverTitles != 5 {
		t.Errorf("Dashboard = %+v, want top_k=10 table_rows=12 hover_titles=5", cfg.Dashboard)
	}
	if cfg.Dashboard.HistogramBinSize != 0.3 {
		t.Errorf("Dashboard.HistogramBinSize = %v, want 0.3", cfg.Dashboard.HistogramBinSize)
	}
	if cfg.Dashboard.RatingPadBelow != 0.16 || cfg.Dashboard.RatingPadAbove != 0.06 {
		t.Errorf("rating padding = %v/%v, want 0.16/0.06", cfg.Dashboard.RatingPadBelow, cfg.Dashboard.RatingPadAbove)
	}
	if cfg.Server.Port != 8050 {
		t.Errorf("Server.Port = %d, want 8050", cfg.Server.Port)
	}
	if cfg.Cache.TTL != 5*time.Minute || !cfg.Cache.Enabled {
		t.Errorf("Cache = %+v, want enabled with 5m TTL", cfg.Cache)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"LIBRARY_CSV_PATH", "library.csv_path"},
		{"PLEX_TOKEN", "plex.token"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DASHBOARD_TOP_K", "dashboard.top_k"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8050 {
		t.Errorf("Server.Port = %d, want 8050", cfg.Server.Port)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
library:
  source: plex
plex:
  url: http://plex.local:32400
  token: file-token
  section: "3"
  page_size: 50
dashboard:
  top_k: 15
server:
  port: 9000
cache:
  ttl: 1m
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("PLEX_TOKEN", "env-token")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Library.Source != "plex" {
		t.Errorf("Library.Source = %q, want plex", cfg.Library.Source)
	}
	if cfg.Plex.Token != "env-token" {
		t.Errorf("Plex.Token = %q, env should override file", cfg.Plex.Token)
	}
	if cfg.Plex.Section != "3" || cfg.Plex.PageSize != 50 {
		t.Errorf("Plex = %+v, want section 3 and page size 50", cfg.Plex)
	}
	if cfg.Plex.RequestsPerSecond != 5 {
		t.Errorf("Plex.RequestsPerSecond = %v, default should survive", cfg.Plex.RequestsPerSecond)
	}
	if cfg.Dashboard.TopK != 15 {
		t.Errorf("Dashboard.TopK = %d, want 15", cfg.Dashboard.TopK)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Cache.TTL != time.Minute {
		t.Errorf("Cache.TTL = %v, want 1m", cfg.Cache.TTL)
	}
	want := []string{"http://a.example", "http://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LIBRARY_SOURCE", "plex")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("expected validation error for plex source without url")
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	customPath := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(customPath, []byte("server:\n  port: 1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, customPath)
		if got := findConfigFile(); got != customPath {
			t.Errorf("findConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got == "/non/existent/config.yaml" {
			t.Errorf("findConfigFile() returned a missing file")
		}
	})
}
