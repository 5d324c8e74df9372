package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/infrastructure/config"
)

// NewViewDedupStore picks a dedup store from configuration: Redis when
// enabled and reachable, otherwise the in-memory fallback with a warning.
func NewViewDedupStore(cfg config.RedisConfig, logger *zap.Logger) ViewDedupStore {
	if !cfg.Enabled {
		logger.Info("using in-memory view dedup store")
		return NewInMemoryViewDedupStore()
	}

	store, err := NewRedisViewDedupStore(RedisOptions{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory view dedup store. "+
			"View counts may double-count across instances.",
			zap.Error(err),
		)
		return NewInMemoryViewDedupStore()
	}

	logger.Info("using Redis view dedup store", zap.String("addr", cfg.Addr()))
	return store
}

// RequireRedisViewDedupStore is the strict variant for deployments that must
// share dedup state.
func RequireRedisViewDedupStore(cfg config.RedisConfig) (ViewDedupStore, error) {
	store, err := NewRedisViewDedupStore(RedisOptions{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("redis required for view dedup: %w", err)
	}
	return store, nil
}
