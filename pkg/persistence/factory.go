package persistence

import (
	"fmt"

	"github.com/peerlink-labs/walletauth-go/pkg/config"
	"github.com/peerlink-labs/walletauth-go/pkg/persistence/badger"
	"github.com/peerlink-labs/walletauth-go/pkg/persistence/memory"
	"github.com/peerlink-labs/walletauth-go/pkg/persistence/redis"
	"go.uber.org/zap"
)

// NewStore opens the persistence backend selected by cfg.StoreType. The
// config is validated before anything is opened.
func NewStore(cfg *config.Config, logger *zap.Logger) (Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.StoreType {
	case config.StoreTypeBadger:
		return badger.NewBadgerStore(cfg.DataPath, logger)
	case config.StoreTypeRedis:
		return redis.NewRedisStore(&redis.RedisConfig{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
	case config.StoreTypeMemory:
		logger.Sugar().Warn("Using in-memory store - all data will be lost on restart")
		return memory.NewMemoryStore(), nil
	default:
		// Validate rejects unknown store types; keep the switch total anyway.
		return nil, fmt.Errorf("unsupported store type: %s", cfg.StoreType)
	}
}
