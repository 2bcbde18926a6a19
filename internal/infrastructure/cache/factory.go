package cache

import (
	"go.uber.org/zap"

	"github.com/hostelops/backend/internal/application/accounts"
	"github.com/hostelops/backend/internal/infrastructure/config"
)

// NewReportCache creates a report cache based on configuration.
// When Redis is enabled and reachable it is preferred; otherwise the cache
// falls back to an in-memory store, which does not share state across
// process instances.
func NewReportCache(cfg config.RedisConfig, logger *zap.Logger) accounts.ReportCache {
	if cfg.Enabled {
		store, err := NewRedisReportCache(cfg, logger)
		if err == nil {
			logger.Info("using Redis report cache", zap.String("addr", cfg.Addr()))
			return store
		}
		logger.Warn("Redis unavailable, falling back to in-memory report cache", zap.Error(err))
	}
	return NewInMemoryReportCache()
}
