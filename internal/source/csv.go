// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// CSV column names. Lookup is case-insensitive; other columns are ignored.
const (
	colTitle       = "title"
	colYear        = "year"
	colRating      = "rating"
	colGenres      = "genres"
	colCountries   = "countries"
	colActors      = "actors"
	colDirectors   = "directors"
	colStudio      = "studio"
	colBitrate     = "bitrate"
	colReleaseDate = "release_date"
)

// releaseDateLayouts are tried in order when parsing release_date.
var releaseDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// CSVLoader reads a library export from a file.
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a loader for the CSV file at path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Name implements Loader.
func (l *CSVLoader) Name() string { return SourceCSV }

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context) ([]models.Item, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open library file: %w", err)
	}
	defer f.Close()

	items, skipped, err := ParseCSV(ctx, f)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		metrics.LibraryRowsSkipped.WithLabelValues(SourceCSV).Add(float64(skipped))
		logging.Warn().Str("path", l.path).Int("skipped", skipped).Msg("Skipped malformed library rows")
	}
	return items, nil
}

// ParseCSV reads items from r. Rows that cannot be parsed are skipped and
// counted. A missing title column is an error.
func ParseCSV(ctx context.Context, r io.Reader) (items []models.Item, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read CSV header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := index[colTitle]; !ok {
		return nil, 0, fmt.Errorf("read CSV header: missing %q column", colTitle)
	}

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, skipped, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			logging.Debug().Err(err).Int("line", line).Msg("Skipping unreadable CSV row")
			skipped++
			continue
		}

		item, err := parseRow(row, index)
		if err != nil {
			logging.Debug().Err(err).Int("line", line).Msg("Skipping malformed CSV row")
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped, nil
}

func parseRow(row []string, index map[string]int) (models.Item, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	item := models.Item{Title: field(colTitle)}
	if item.Title == "" {
		return item, errors.New("empty title")
	}

	var err error
	if item.Year, err = parseWholeNumber(field(colYear)); err != nil {
		return item, fmt.Errorf("year: %w", err)
	}
	if item.Bitrate, err = parseWholeNumber(field(colBitrate)); err != nil {
		return item, fmt.Errorf("bitrate: %w", err)
	}

	if raw := field(colRating); !isMissing(raw) {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 10 {
			return item, fmt.Errorf("rating: invalid value %q", raw)
		}
		item.Rating, item.Rated = rating, true
	}

	lists := []struct {
		column string
		dst    *[]string
	}{
		{colGenres, &item.Genres},
		{colCountries, &item.Countries},
		{colActors, &item.Actors},
		{colDirectors, &item.Directors},
	}
	for _, l := range lists {
		if *l.dst, err = ParseList(field(l.column)); err != nil {
			return item, fmt.Errorf("%s: %w", l.column, err)
		}
	}

	if studio := field(colStudio); !isMissing(studio) {
		item.Studio = studio
	}
	item.ReleaseDate = parseReleaseDate(field(colReleaseDate))
	return item, nil
}

// parseWholeNumber accepts integers and integral floats ("1999.0"), which is
// how pandas writes integer columns that contain missing values.
func parseWholeNumber(raw string) (int, error) {
	if isMissing(raw) {
		return 0, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid value %q", raw)
	}
	return int(f), nil
}

func parseReleaseDate(raw string) time.Time {
	if isMissing(raw) {
		return time.Time{}
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func isMissing(raw string) bool {
	switch strings.ToLower(raw) {
	case "", "nan", "none", "null", "nat":
		return true
	}
	return false
}
