// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SummaryCache caches computed dashboard results keyed by period. Entries are
// invalidated wholesale whenever an expense or contribution is written, so a
// stale summary is never served after a mutation.
type SummaryCache interface {
	// Get loads a cached value into dest. The second return is false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Invalidate drops every cached summary entry.
	Invalidate(ctx context.Context) error
}
