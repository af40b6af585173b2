// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLibrary() error {
	switch c.Library.Source {
	case "csv":
		if strings.TrimSpace(c.Library.CSVPath) == "" {
			return fmt.Errorf("LIBRARY_CSV_PATH is required when LIBRARY_SOURCE=csv")
		}
		return nil
	case "plex":
		return c.validatePlex()
	default:
		return fmt.Errorf("LIBRARY_SOURCE must be csv or plex, got: %q", c.Library.Source)
	}
}

// validatePlex validates Plex configuration (only when it is the library source)
func (c *Config) validatePlex() error {
	if c.Plex.URL == "" {
		return fmt.Errorf("PLEX_URL is required when LIBRARY_SOURCE=plex")
	}
	if err := validateHTTPURL(c.Plex.URL, "PLEX_URL"); err != nil {
		return fmt.Errorf("PLEX_URL is invalid: %w", err)
	}
	if c.Plex.Token == "" {
		return fmt.Errorf("PLEX_TOKEN is required when LIBRARY_SOURCE=plex")
	}
	if c.Plex.Section == "" {
		return fmt.Errorf("PLEX_SECTION is required when LIBRARY_SOURCE=plex")
	}
	if c.Plex.PageSize < 1 || c.Plex.PageSize > 1000 {
		return fmt.Errorf("PLEX_PAGE_SIZE must be between 1 and 1000, got: %d", c.Plex.PageSize)
	}
	if c.Plex.RequestsPerSecond < 0 {
		return fmt.Errorf("PLEX_REQUESTS_PER_SECOND must not be negative, got: %v", c.Plex.RequestsPerSecond)
	}
	return nil
}

func (c *Config) validateDashboard() error {
	d := c.Dashboard
	if d.TopK < 1 {
		return fmt.Errorf("DASHBOARD_TOP_K must be at least 1, got: %d", d.TopK)
	}
	if d.TableRows < 1 {
		return fmt.Errorf("DASHBOARD_TABLE_ROWS must be at least 1, got: %d", d.TableRows)
	}
	if d.HoverTitles < 0 {
		return fmt.Errorf("DASHBOARD_HOVER_TITLES must not be negative, got: %d", d.HoverTitles)
	}
	if d.HistogramBinSize <= 0 || d.HistogramBinSize > 10 {
		return fmt.Errorf("DASHBOARD_HISTOGRAM_BIN_SIZE must be in (0, 10], got: %v", d.HistogramBinSize)
	}
	if d.RatingPadBelow < 0 || d.RatingPadAbove < 0 {
		return fmt.Errorf("rating padding must not be negative, got: below=%v above=%v", d.RatingPadBelow, d.RatingPadAbove)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got: %d", c.Server.Port)
	}
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("HTTP_TIMEOUT must be at least 1s, got: %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got: %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got: %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when caching is enabled, got: %v", c.Cache.TTL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got: %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %q", c.Logging.Format)
	}
	return nil
}
