// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package source

import (
	"context"
	"fmt"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

const defaultPlexPageSize = 100

// PlexLoader reads every item of one Plex library section.
type PlexLoader struct {
	client   *CircuitBreakerClient
	section  string
	pageSize int
}

// NewPlexLoader creates a loader from the plex configuration section.
func NewPlexLoader(cfg *config.PlexConfig) *PlexLoader {
	client := NewPlexClient(cfg.URL, cfg.Token, cfg.RequestsPerSecond, cfg.Timeout)
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPlexPageSize
	}
	return &PlexLoader{
		client:   NewCircuitBreakerClient(client),
		section:  cfg.Section,
		pageSize: pageSize,
	}
}

// Name implements Loader.
func (l *PlexLoader) Name() string { return SourcePlex }

// Load implements Loader. Pages are requested until a short page is returned
// or the reported total has been reached.
func (l *PlexLoader) Load(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	start := 0
	for {
		page, err := l.client.GetLibrarySectionContent(ctx, l.section, start, l.pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch section %s at offset %d: %w", l.section, start, err)
		}

		container := page.MediaContainer
		for i := range container.Metadata {
			items = append(items, itemFromPlex(&container.Metadata[i]))
		}
		logging.Debug().
			Str("section", l.section).
			Int("offset", start).
			Int("received", len(container.Metadata)).
			Int("total", container.TotalSize).
			Msg("Fetched Plex library page")

		start += len(container.Metadata)
		if len(container.Metadata) < l.pageSize {
			break
		}
		if container.TotalSize > 0 && start >= container.TotalSize {
			break
		}
	}
	return items, nil
}

func itemFromPlex(m *PlexMetadata) models.Item {
	item := models.Item{
		Title:       m.Title,
		Year:        m.Year,
		Genres:      tags(m.Genre),
		Countries:   tags(m.Country),
		Actors:      tags(m.Role),
		Directors:   tags(m.Director),
		Studio:      m.Studio,
		ReleaseDate: parseReleaseDate(m.OriginallyAvailableAt),
		RatingKey:   m.RatingKey,
	}
	if m.AudienceRating != nil {
		item.Rating, item.Rated = *m.AudienceRating, true
	}
	if len(m.Media) > 0 {
		item.Bitrate = m.Media[0].Bitrate
	}
	return item
}

func tags(in []PlexTag) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = t.Tag
	}
	return out
}
