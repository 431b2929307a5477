package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prperemyshlev/localmaps-api/pkg/database"
	"github.com/redis/go-redis/v9"
)

// RedisPlaceDetailsCache keeps place details payloads in Redis for a fixed TTL
type RedisPlaceDetailsCache struct {
	redis *database.Redis
	ttl   time.Duration
}

// NewRedisPlaceDetailsCache creates a new place details cache
func NewRedisPlaceDetailsCache(redis *database.Redis, ttl time.Duration) *RedisPlaceDetailsCache {
	return &RedisPlaceDetailsCache{redis: redis, ttl: ttl}
}

func placeDetailsKey(placeID string) string {
	return fmt.Sprintf("places:details:%s", placeID)
}

// Get returns the cached payload and whether it was present
func (c *RedisPlaceDetailsCache) Get(ctx context.Context, placeID string) (json.RawMessage, bool, error) {
	val, err := c.redis.Client.Get(ctx, placeDetailsKey(placeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read place details: %w", err)
	}
	return json.RawMessage(val), true, nil
}

// Set stores the payload with the cache TTL
func (c *RedisPlaceDetailsCache) Set(ctx context.Context, placeID string, payload json.RawMessage) error {
	if err := c.redis.Client.Set(ctx, placeDetailsKey(placeID), []byte(payload), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache place details: %w", err)
	}
	return nil
}
