package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/propman/backend/internal/domain/billing"
	"github.com/propman/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const summaryKey = "propman:billing:summary"

// RedisSummaryCache implements billing.SummaryCache using Redis
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSummaryCache creates a Redis-backed summary cache and verifies
// the connection
func NewRedisSummaryCache(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisSummaryCache, error) {
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

	return &RedisSummaryCache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("summary-cache"),
	}, nil
}

// Get returns the cached summary, or (nil, nil) on a miss
func (c *RedisSummaryCache) Get(ctx context.Context) (*billing.Summary, error) {
	data, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var summary billing.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes
		c.logger.Warn("dropping unreadable summary cache entry", zap.Error(err))
		_ = c.client.Del(ctx, summaryKey).Err()
		return nil, nil
	}
	return &summary, nil
}

// Set stores the summary with the configured TTL
func (c *RedisSummaryCache) Set(ctx context.Context, summary *billing.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate drops the cached summary
func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}
