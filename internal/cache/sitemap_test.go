package cache

import (
	"context"
	"testing"
)

// The server must run without Valkey configured; a nil client turns the
// sitemap cache into a no-op.
func TestSitemapCacheNilClient(t *testing.T) {
	sc := NewSitemapCache(nil, 0)
	ctx := context.Background()

	if _, ok := sc.Get(ctx); ok {
		t.Error("nil client must always miss")
	}

	// Must not panic.
	sc.Set(ctx, []byte("<urlset/>"))
	sc.Invalidate(ctx)

	if sc.ttl != DefaultSitemapTTL {
		t.Errorf("ttl: got %v, want default", sc.ttl)
	}
}
