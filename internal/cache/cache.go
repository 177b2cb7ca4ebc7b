// Package cache holds the Redis-backed recap cache. Aggregating a
// year is cheap but hit on every recap page load, so results are kept
// per (year, viewer) and invalidated whenever a show or RSVP in that
// year changes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"codeberg.org/encore/server/internal/logger"
	"codeberg.org/encore/server/internal/recap"
	"github.com/redis/go-redis/v9"
)

const (
	keyRecap     = "recap:%d:%s" // recap:<year>:<normalized viewer>
	keyYearIndex = "recap_keys:%d"

	defaultTTL = 6 * time.Hour
)

type RecapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// connects to Redis and verifies the connection
func NewRecapCache(redisURL string) (*RecapCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return &RecapCache{client: client, ttl: defaultTTL}, nil
}

func (c *RecapCache) Close() error {
	return c.client.Close()
}

// returns the cached recap for a (year, viewer) pair, or nil on miss.
// Cache errors degrade to a miss; the caller re-aggregates.
func (c *RecapCache) Get(ctx context.Context, year int, viewer string) *recap.RecapData {
	key := fmt.Sprintf(keyRecap, year, recap.NormalizeName(viewer))

	raw, err := c.client.Get(ctx, key).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil
	}

	if err != nil {
		logger.ErrorErr(err, "recap cache read failed", "key", key)
		return nil
	}

	var data recap.RecapData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.ErrorErr(err, "recap cache entry corrupt, dropping", "key", key)
		c.client.Del(ctx, key) //nolint:errcheck // best-effort cleanup
		return nil
	}

	return &data
}

// stores a recap and registers its key in the year index so
// InvalidateYear can find it later
func (c *RecapCache) Set(ctx context.Context, year int, viewer string, data *recap.RecapData) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.ErrorErr(err, "failed to marshal recap for cache")
		return
	}

	key := fmt.Sprintf(keyRecap, year, recap.NormalizeName(viewer))
	indexKey := fmt.Sprintf(keyYearIndex, year)

	pipe := c.client.Pipeline()
	pipe.Set(ctx, key, raw, c.ttl)
	pipe.SAdd(ctx, indexKey, key)
	pipe.Expire(ctx, indexKey, c.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.ErrorErr(err, "recap cache write failed", "key", key)
	}
}

// drops every cached recap for a year; called after show or RSVP writes
func (c *RecapCache) InvalidateYear(ctx context.Context, year int) {
	indexKey := fmt.Sprintf(keyYearIndex, year)

	keys, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.ErrorErr(err, "recap cache invalidation failed", "year", year)
		return
	}

	if len(keys) == 0 {
		return
	}

	keys = append(keys, indexKey)

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.ErrorErr(err, "recap cache invalidation failed", "year", year)
	}
}
