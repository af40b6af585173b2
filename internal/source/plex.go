// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
plex.go - Plex Media Server API Client

PlexClient Features:
  - X-Plex-Token authentication
  - Token bucket pacing (plex.requests_per_second)
  - Automatic rate limit handling with exponential backoff
  - JSON response parsing

Related Files:
  - plex_request.go: HTTP request helpers
  - circuit_breaker.go: circuit breaker wrapper
  - plex_loader.go: library section paging and item mapping
*/

//nolint:staticcheck // File documentation, not package doc
package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/logging"
)

const defaultPlexTimeout = 30 * time.Second

// PlexClient handles communication with the Plex Media Server API.
type PlexClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter

	// baseDelay is the first 429 backoff step.
	baseDelay time.Duration
}

// PlexSectionResponse is the response of /library/sections/{key}/all.
type PlexSectionResponse struct {
	MediaContainer PlexSectionContainer `json:"MediaContainer"`
}

// PlexSectionContainer wraps one page of library items.
type PlexSectionContainer struct {
	Size      int            `json:"size"`
	TotalSize int            `json:"totalSize,omitempty"`
	Offset    int            `json:"offset,omitempty"`
	Metadata  []PlexMetadata `json:"Metadata,omitempty"`
}

// PlexMetadata is one library item. Only the fields the dashboard uses are
// decoded.
type PlexMetadata struct {
	RatingKey             string      `json:"ratingKey"`
	Type                  string      `json:"type"`
	Title                 string      `json:"title"`
	Year                  int         `json:"year,omitempty"`
	Studio                string      `json:"studio,omitempty"`
	AudienceRating        *float64    `json:"audienceRating,omitempty"`
	OriginallyAvailableAt string      `json:"originallyAvailableAt,omitempty"`
	Genre                 []PlexTag   `json:"Genre,omitempty"`
	Country               []PlexTag   `json:"Country,omitempty"`
	Role                  []PlexTag   `json:"Role,omitempty"`
	Director              []PlexTag   `json:"Director,omitempty"`
	Media                 []PlexMedia `json:"Media,omitempty"`
}

// PlexTag is a Plex tag reference such as a genre or an actor.
type PlexTag struct {
	Tag string `json:"tag"`
}

// PlexMedia is one media version of an item.
type PlexMedia struct {
	Bitrate int `json:"bitrate,omitempty"`
}

// NewPlexClient creates a Plex API client.
//
// Parameters:
//   - baseURL: Plex Media Server URL (e.g., "http://localhost:32400")
//   - token: X-Plex-Token for authentication
//   - requestsPerSecond: request pacing; <= 0 disables pacing
//   - timeout: per-request HTTP timeout; <= 0 uses 30 seconds
func NewPlexClient(baseURL, token string, requestsPerSecond float64, timeout time.Duration) *PlexClient {
	if timeout <= 0 {
		timeout = defaultPlexTimeout
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &PlexClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		baseDelay:  time.Second,
	}
}

// GetLibrarySectionContent retrieves one page of a library section.
//
// Endpoint: GET /library/sections/{sectionKey}/all
func (c *PlexClient) GetLibrarySectionContent(ctx context.Context, sectionKey string, start, size int) (*PlexSectionResponse, error) {
	query := url.Values{}
	query.Add("X-Plex-Container-Start", strconv.Itoa(start))
	query.Add("X-Plex-Container-Size", strconv.Itoa(size))

	var resp PlexSectionResponse
	if err := c.doJSONRequestWithQuery(ctx, "/library/sections/"+url.PathEscape(sectionKey)+"/all", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequestWithRateLimit executes req, retrying HTTP 429 responses.
//
//   - Max 5 retry attempts
//   - Exponential backoff: 1s, 2s, 4s, 8s, 16s
//   - Respects Retry-After header (seconds) if present
func (c *PlexClient) doRequestWithRateLimit(req *http.Request) (*http.Response, error) {
	const maxRetries = 5

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("execute request: %w", err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		resp.Body.Close()

		if attempt == maxRetries {
			return nil, fmt.Errorf("rate limit exceeded after %d retries", maxRetries)
		}

		retryDelay := c.baseDelay * (1 << attempt)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				retryDelay = time.Duration(seconds) * time.Second
			}
		}

		logging.Warn().Dur("retry_delay", retryDelay).Int("attempt", attempt+1).Int("max_retries", maxRetries).Msg("Plex API rate limited (HTTP 429), retrying")

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("unreachable code: retry loop should return or error")
}
