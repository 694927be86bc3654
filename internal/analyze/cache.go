package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache stores analyses keyed by request checksum.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func cacheKey(checksum string) string {
	return fmt.Sprintf("analysis::%s", checksum)
}

// Get returns the cached analysis, or nil if there is none.
func (c *RedisCache) Get(ctx context.Context, checksum string) (*Analysis, error) {
	cached, err := c.rdb.Get(ctx, cacheKey(checksum)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var analysis Analysis
	if err := json.Unmarshal(cached, &analysis); err != nil {
		return nil, fmt.Errorf("unmarshal cached analysis: %w", err)
	}
	return &analysis, nil
}

func (c *RedisCache) Set(ctx context.Context, checksum string, analysis *Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	if err := c.rdb.Set(ctx, cacheKey(checksum), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
