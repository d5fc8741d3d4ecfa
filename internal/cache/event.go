// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// event.go provides a Valkey-backed cache of raw event payloads keyed by
// invitation token. A cached payload lets repeat views of the same
// invitation skip the remote event API entirely.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// eventKeyPrefix namespaces event payload keys in Valkey.
	eventKeyPrefix = "event:"

	// DefaultEventTTL is how long a fetched event payload stays cached.
	DefaultEventTTL = 10 * time.Minute
)

// EventCache stores raw event API payloads in Valkey. A nil *EventCache
// is valid and behaves as a cache that always misses, so callers need no
// nil checks when Valkey is not configured.
type EventCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEventCache creates an event cache backed by the given Valkey client.
func NewEventCache(client *redis.Client, ttl time.Duration) *EventCache {
	if ttl == 0 {
		ttl = DefaultEventTTL
	}
	return &EventCache{client: client, ttl: ttl}
}

// Get retrieves the cached payload for a token. Returns false on miss.
func (ec *EventCache) Get(ctx context.Context, token string) ([]byte, bool) {
	if ec == nil {
		return nil, false
	}
	val, err := ec.client.Get(ctx, eventKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("event cache get error", "token", token, "error", err)
		return nil, false
	}
	slog.Debug("event cache hit", "token", token)
	return val, true
}

// Set stores a fetched payload for a token with the configured TTL.
func (ec *EventCache) Set(ctx context.Context, token string, payload []byte) {
	if ec == nil {
		return
	}
	if err := ec.client.Set(ctx, eventKeyPrefix+token, payload, ec.ttl).Err(); err != nil {
		slog.Warn("event cache set error", "token", token, "error", err)
	}
}

// Invalidate removes a token's cached payload.
func (ec *EventCache) Invalidate(ctx context.Context, token string) {
	if ec == nil {
		return
	}
	if err := ec.client.Del(ctx, eventKeyPrefix+token).Err(); err != nil {
		slog.Warn("event cache invalidate error", "token", token, "error", err)
	}
}
