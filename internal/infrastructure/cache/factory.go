package cache

import (
	"time"

	"github.com/propman/backend/internal/domain/billing"
	"github.com/propman/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewSummaryCache builds the dashboard summary cache. Redis is used when
// enabled and reachable; otherwise the process-local cache serves as a
// fallback so the dashboard keeps working without shared state.
func NewSummaryCache(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) billing.SummaryCache {
	if cfg.Enabled {
		redisCache, err := NewRedisSummaryCache(cfg, ttl, logger)
		if err == nil {
			logger.Info("using Redis summary cache", zap.String("addr", cfg.Addr()))
			return redisCache
		}
		logger.Warn("Redis unavailable, falling back to in-memory summary cache", zap.Error(err))
	}
	return NewInMemorySummaryCache(ttl)
}
