// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// Supported library sources.
const (
	SourceCSV  = "csv"
	SourcePlex = "plex"
)

var (
	// ErrUnknownSource is returned by New for an unsupported library.source.
	ErrUnknownSource = errors.New("unknown library source")

	// ErrEmptyLibrary is returned by LoadLibrary when a loader yields no items.
	ErrEmptyLibrary = errors.New("library contains no items")
)

// Loader produces the library items.
type Loader interface {
	// Name identifies the source in logs and metrics.
	Name() string
	Load(ctx context.Context) ([]models.Item, error)
}

// New returns the loader configured by cfg.Library.Source.
func New(cfg *config.Config) (Loader, error) {
	switch cfg.Library.Source {
	case SourceCSV, "":
		return NewCSVLoader(cfg.Library.CSVPath), nil
	case SourcePlex:
		return NewPlexLoader(&cfg.Plex), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Library.Source)
	}
}

// LoadLibrary runs loader once and records load metrics.
func LoadLibrary(ctx context.Context, loader Loader) ([]models.Item, error) {
	start := time.Now()
	items, err := loader.Load(ctx)
	duration := time.Since(start)

	metrics.LibraryLoadDuration.WithLabelValues(loader.Name()).Observe(duration.Seconds())
	if err != nil {
		metrics.LibraryLoadErrors.WithLabelValues(loader.Name()).Inc()
		return nil, fmt.Errorf("load %s library: %w", loader.Name(), err)
	}
	if len(items) == 0 {
		metrics.LibraryLoadErrors.WithLabelValues(loader.Name()).Inc()
		return nil, fmt.Errorf("load %s library: %w", loader.Name(), ErrEmptyLibrary)
	}

	metrics.LibraryItems.Set(float64(len(items)))
	logging.Info().
		Str("source", loader.Name()).
		Int("items", len(items)).
		Dur("duration", duration).
		Msg("Library loaded")
	return items, nil
}
