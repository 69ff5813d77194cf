// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// body.go provides a Valkey-backed cache of compiled article bodies (L2).
// Replicas share it, so a body compiled by one process is served by the
// others without reading or compiling the Markdown source again.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// bodyKeyPrefix is the Valkey key prefix for cached bodies.
	bodyKeyPrefix = "body:"

	// DefaultBodyTTL is how long a compiled body stays cached.
	DefaultBodyTTL = 30 * time.Minute
)

// BodyCache stores compiled article HTML in Valkey.
type BodyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBodyCache creates a new body cache backed by the given Valkey client.
func NewBodyCache(client *redis.Client, ttl time.Duration) *BodyCache {
	if ttl == 0 {
		ttl = DefaultBodyTTL
	}
	return &BodyCache{client: client, ttl: ttl}
}

// Get retrieves the cached HTML for key. Errors are logged and reported as
// a miss.
func (bc *BodyCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := bc.client.Get(ctx, bodyKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("body cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("body cache hit", "key", key)
	return val, true
}

// Set stores compiled HTML for key with the configured TTL.
func (bc *BodyCache) Set(ctx context.Context, key string, html []byte) {
	if err := bc.client.Set(ctx, bodyKeyPrefix+key, html, bc.ttl).Err(); err != nil {
		slog.Warn("body cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes all cached bodies by scanning for the prefix.
// Called at startup, since the bodies on disk may have changed since the
// previous deploy.
func (bc *BodyCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := bc.client.Scan(ctx, cursor, bodyKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("body cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := bc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("body cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("body cache cleared", "deleted", deleted)
	}
}
