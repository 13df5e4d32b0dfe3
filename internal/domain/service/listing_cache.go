package service

import (
	"context"
	"time"
)

// ListingCache caches public listing query results. Invalidation is coarse:
// any listing mutation drops every cached query at once.
//
// Entries are namespaced by generation. Get reports the generation it read
// under and Set writes under the generation it is given, so a result loaded
// before an invalidation is never visible to readers after it.
type ListingCache interface {
	// Get loads key into dest and reports the generation it read under and
	// whether the entry was present.
	Get(ctx context.Context, key string, dest any) (generation string, hit bool, err error)
	Set(ctx context.Context, generation, key string, value any, ttl time.Duration) error
	InvalidateAll(ctx context.Context) error
}
