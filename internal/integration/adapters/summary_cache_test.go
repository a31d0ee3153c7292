package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*summaryCache, *miniredis.Miniredis) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return &summaryCache{client: client}, server
}

func TestSummaryCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Total string `json:"total"`
		Count int    `json:"count"`
	}

	if err := cache.Set(ctx, "summary:2024-03", payload{Total: "150.00", Count: 3}, time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	var got payload
	found, err := cache.Get(ctx, "summary:2024-03", &got)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !found {
		t.Fatal("expected a cache hit")
	}
	if got.Total != "150.00" || got.Count != 3 {
		t.Errorf("got %+v, want total 150.00 and count 3", got)
	}
}

func TestSummaryCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var got map[string]any
	found, err := cache.Get(context.Background(), "summary:2024-01", &got)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Error("expected a cache miss for an unknown key")
	}
}

func TestSummaryCacheExpiry(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "summary:2024-03", "stale", time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	server.FastForward(2 * time.Minute)

	var got string
	found, err := cache.Get(ctx, "summary:2024-03", &got)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Error("expected the entry to expire after the TTL")
	}
}

func TestSummaryCacheInvalidateDropsOnlyPrefixedKeys(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "summary:2024-03", "a", time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := cache.Set(ctx, "summary:2024-04", "b", time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := server.Set("session:abc", "keep"); err != nil {
		t.Fatalf("failed to seed unrelated key: %v", err)
	}

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}

	var got string
	found, err := cache.Get(ctx, "summary:2024-03", &got)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Error("expected cached summaries to be dropped")
	}
	if !server.Exists("session:abc") {
		t.Error("expected unrelated keys to survive invalidation")
	}
}
