// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Library   LibraryConfig   `koanf:"library"`
	Plex      PlexConfig      `koanf:"plex"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Cache     CacheConfig     `koanf:"cache"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// LibraryConfig selects where the library is loaded from.
type LibraryConfig struct {
	Source  string `koanf:"source"`   // csv or plex
	CSVPath string `koanf:"csv_path"` // used when Source is csv
}

// PlexConfig holds Plex Media Server connection settings.
type PlexConfig struct {
	URL               string        `koanf:"url"`     // Plex Media Server URL (http://localhost:32400)
	Token             string        `koanf:"token"`   // X-Plex-Token for authentication
	Section           string        `koanf:"section"` // Library section key of the movie library
	PageSize          int           `koanf:"page_size"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Timeout           time.Duration `koanf:"timeout"`
}

// DashboardConfig tunes chart output.
type DashboardConfig struct {
	TopK             int     `koanf:"top_k"`        // bars in the actor/director charts
	TableRows        int     `koanf:"table_rows"`   // rows in the highest rated table
	HoverTitles      int     `koanf:"hover_titles"` // titles listed per year bar
	HistogramBinSize float64 `koanf:"histogram_bin_size"`
	RatingPadBelow   float64 `koanf:"rating_pad_below"`
	RatingPadAbove   float64 `koanf:"rating_pad_above"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CacheConfig controls the dashboard response cache.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// Load is an alias for LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
