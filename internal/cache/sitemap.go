// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// sitemap.go provides a Valkey-backed cache for the rendered sitemap XML.
// Building the sitemap walks the entire catalog, so the rendered document
// is cached and invalidated whenever a catalog entity changes.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// sitemapKey is the Valkey key holding the rendered sitemap XML.
	sitemapKey = "sitemap:xml"

	// DefaultSitemapTTL bounds staleness even without invalidation.
	DefaultSitemapTTL = 1 * time.Hour
)

// SitemapCache stores the rendered sitemap document in Valkey.
// A nil client is allowed and turns every operation into a no-op, so
// the server keeps working when Valkey is not configured.
type SitemapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSitemapCache creates a sitemap cache backed by the given Valkey client.
func NewSitemapCache(client *redis.Client, ttl time.Duration) *SitemapCache {
	if ttl == 0 {
		ttl = DefaultSitemapTTL
	}
	return &SitemapCache{client: client, ttl: ttl}
}

// Get retrieves the cached sitemap XML. Returns false on miss.
func (sc *SitemapCache) Get(ctx context.Context) ([]byte, bool) {
	if sc == nil || sc.client == nil {
		return nil, false
	}
	val, err := sc.client.Get(ctx, sitemapKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("sitemap cache get error", "error", err)
		return nil, false
	}
	slog.Debug("sitemap cache hit")
	return val, true
}

// Set stores the rendered sitemap XML with the configured TTL.
func (sc *SitemapCache) Set(ctx context.Context, xml []byte) {
	if sc == nil || sc.client == nil {
		return
	}
	if err := sc.client.Set(ctx, sitemapKey, xml, sc.ttl).Err(); err != nil {
		slog.Warn("sitemap cache set error", "error", err)
	}
}

// Invalidate drops the cached sitemap. Called after any catalog mutation.
func (sc *SitemapCache) Invalidate(ctx context.Context) {
	if sc == nil || sc.client == nil {
		return
	}
	if err := sc.client.Del(ctx, sitemapKey).Err(); err != nil {
		slog.Warn("sitemap cache invalidate error", "error", err)
	}
	slog.Debug("sitemap cache invalidated")
}
