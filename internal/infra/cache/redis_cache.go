// Package cache provides the listing query cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"crimson/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "crimson:listings:"
	versionKey = keyPrefix + "version"
)

// redisListingCache namespaces entries by a generation counter. Bumping the
// counter orphans every older entry, which then expire on their own TTL.
type redisListingCache struct {
	client redis.UniversalClient
	logger *slog.Logger
}

// NewRedisListingCache wraps an existing client.
func NewRedisListingCache(client redis.UniversalClient, logger *slog.Logger) service.ListingCache {
	return &redisListingCache{client: client, logger: logger}
}

func (c *redisListingCache) Get(ctx context.Context, key string, dest any) (string, bool, error) {
	generation, err := c.generation(ctx)
	if err != nil {
		return "", false, err
	}

	fullKey := entryKey(generation, key)
	raw, err := c.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return generation, false, nil
	}
	if err != nil {
		return generation, false, errors.Wrap(err, "failed to read cache entry")
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A stale entry from an older shape is treated as a miss.
		c.logger.Warn("Dropping undecodable cache entry",
			slog.String("key", fullKey),
			slog.Any("error", err),
		)

		return generation, false, nil
	}

	return generation, true, nil
}

// Set stores value under the generation returned by the Get that missed. A
// write for a generation that has since been invalidated is dropped.
func (c *redisListingCache) Set(ctx context.Context, generation, key string, value any, ttl time.Duration) error {
	current, err := c.generation(ctx)
	if err != nil {
		return err
	}
	if current != generation {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to encode cache entry")
	}

	if err := c.client.Set(ctx, entryKey(generation, key), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write cache entry")
	}

	return nil
}

func (c *redisListingCache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return errors.Wrap(err, "failed to bump cache version")
	}

	return nil
}

func (c *redisListingCache) generation(ctx context.Context) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", errors.Wrap(err, "failed to read cache version")
	}

	return "v" + strconv.FormatInt(version, 10), nil
}

func entryKey(generation, key string) string {
	return keyPrefix + generation + ":" + key
}

type noopListingCache struct{}

func (noopListingCache) Get(context.Context, string, any) (string, bool, error) {
	return "", false, nil
}

func (noopListingCache) Set(context.Context, string, string, any, time.Duration) error { return nil }

func (noopListingCache) InvalidateAll(context.Context) error { return nil }
