package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hostelops/backend/internal/application/accounts"
	"github.com/hostelops/backend/internal/infrastructure/config"
)

// RedisReportCache implements accounts.ReportCache backed by Redis.
// Suitable for deployments where multiple instances share report state.
type RedisReportCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisReportCache creates a Redis-backed report cache and verifies the
// connection
func NewRedisReportCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisReportCache{
		client: client,
		logger: logger.Named("report-cache"),
	}, nil
}

// NewRedisReportCacheWithClient creates a cache with an existing Redis client
func NewRedisReportCacheWithClient(client *redis.Client, logger *zap.Logger) *RedisReportCache {
	return &RedisReportCache{
		client: client,
		logger: logger.Named("report-cache"),
	}
}

// Get loads a cached payload into dest; ok is false on miss or backend error
func (c *RedisReportCache) Get(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	return json.Unmarshal(payload, dest) == nil
}

// Set stores a payload under key for at most ttl
func (c *RedisReportCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, keyPrefix+key, payload, ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateHostel scans the report keyspace and drops every entry that could
// include data for the hostel, including all-hostel entries
func (c *RedisReportCache) InvalidateHostel(ctx context.Context, hostelID string) {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if !keyCoversHostel(key, hostelID) {
			continue
		}
		if err := c.client.Del(ctx, key).Err(); err != nil {
			c.logger.Warn("cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("cache scan failed", zap.String("hostel_id", hostelID), zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

var _ accounts.ReportCache = (*RedisReportCache)(nil)
