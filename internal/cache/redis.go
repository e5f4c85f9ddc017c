package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nflgoat/ingestion/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	teamIDsKey     = "nfl:teams:ids"
	lastSyncKey    = "nfl:sync:last"
	defaultTimeout = 5 * time.Second
)

// Config holds Redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache caches stable lookups and the last sync summary. Every caller
// treats it as optional: a cache failure never fails a sync.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetTeamIDs retrieves the cached team id list. A miss returns nil, nil.
func (c *RedisCache) GetTeamIDs(ctx context.Context) ([]int, error) {
	data, err := c.client.Get(ctx, teamIDsKey).Result()
	if err == redis.Nil {
		metrics.RecordCacheMiss()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team ids: %w", err)
	}

	var ids []int
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode team ids: %w", err)
	}

	metrics.RecordCacheHit()
	return ids, nil
}

// SetTeamIDs caches the team id list
func (c *RedisCache) SetTeamIDs(ctx context.Context, ids []int, ttl time.Duration) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode team ids: %w", err)
	}
	return c.client.Set(ctx, teamIDsKey, data, ttl).Err()
}

// SetLastSync stores the summary of the most recent sync run
func (c *RedisCache) SetLastSync(ctx context.Context, summary interface{}, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode sync summary: %w", err)
	}
	return c.client.Set(ctx, lastSyncKey, data, ttl).Err()
}

// GetLastSync retrieves the most recent sync summary into out. A miss
// returns false, nil.
func (c *RedisCache) GetLastSync(ctx context.Context, out interface{}) (bool, error) {
	data, err := c.client.Get(ctx, lastSyncKey).Result()
	if err == redis.Nil {
		metrics.RecordCacheMiss()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get sync summary: %w", err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, fmt.Errorf("failed to decode sync summary: %w", err)
	}

	metrics.RecordCacheHit()
	return true, nil
}
