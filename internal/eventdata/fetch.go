// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package eventdata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ceremony/internal/cache"
	"ceremony/internal/metrics"
	"ceremony/internal/models"
)

// DefaultBaseURL points at the production event API.
const DefaultBaseURL = "https://ceremony-api.onrender.com"

// maxPayloadSize bounds how much of an event response we read.
const maxPayloadSize = 1 << 20

var (
	// ErrNotFound means the invitation token matched nothing; the link
	// is expired or incorrect. Terminal for the session; no retry.
	ErrNotFound = errors.New("invitation not found")

	// ErrUnavailable means the event API failed transiently. Also
	// terminal for the session, but surfaced with different wording.
	ErrUnavailable = errors.New("event service unavailable")
)

// Client fetches event data for invitation tokens. Demo tokens are
// short-circuited with fixtures; real tokens hit the Valkey cache before
// the remote API. At most one fetch is outstanding per rendering session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.EventCache
}

// NewClient creates a fetch client. baseURL defaults to the production
// API when empty; eventCache may be nil when Valkey is not configured.
func NewClient(baseURL string, eventCache *cache.EventCache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      eventCache,
	}
}

// Fetch returns the normalized event data for a token. Failures are
// classified as ErrNotFound or ErrUnavailable; there is no partial data.
func (c *Client) Fetch(ctx context.Context, token string) (*models.EventData, error) {
	if ev, ok := DemoEvent(token); ok {
		metrics.EventFetches.WithLabelValues("demo").Inc()
		return ev, nil
	}

	if payload, ok := c.cache.Get(ctx, token); ok {
		ev, err := Normalize(payload)
		if err == nil {
			metrics.EventFetches.WithLabelValues("cache_hit").Inc()
			return ev, nil
		}
		// A cached payload that no longer parses is dropped and refetched.
		slog.Warn("discarding unparseable cached event payload", "token", token, "error", err)
		c.cache.Invalidate(ctx, token)
	}

	payload, err := c.fetchRemote(ctx, token)
	if err != nil {
		return nil, err
	}

	ev, err := Normalize(payload)
	if err != nil {
		metrics.EventFetches.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.cache.Set(ctx, token, payload)
	metrics.EventFetches.WithLabelValues("ok").Inc()
	return ev, nil
}

func (c *Client) fetchRemote(ctx context.Context, token string) ([]byte, error) {
	url := fmt.Sprintf("%s/api/public/events/%s", c.baseURL, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.EventFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.EventFetches.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.EventFetches.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("%w: token %q", ErrNotFound, token)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		metrics.EventFetches.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		metrics.EventFetches.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return payload, nil
}
