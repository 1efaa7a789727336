package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keySchemaVersion     = "walletauth:metadata:schema_version"
	currentSchemaVersion = "v1"
)

// RedisStore is a durable Store implementation backed by Redis, suitable for
// deployments where ledger state must outlive any single host.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
	mu     sync.RWMutex
	closed bool
}

// RedisConfig holds the configuration for connecting to Redis
type RedisConfig struct {
	// Address is the Redis server address (host:port)
	Address string
	// Password is the optional Redis password
	Password string
	// DB is the Redis database number (0-15)
	DB int
}

// NewRedisStore connects to Redis and validates the schema version.
func NewRedisStore(cfg *RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	rs := &RedisStore{
		client: client,
		logger: logger,
	}

	if err := rs.initSchema(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Sugar().Infow("Redis store initialized", "address", cfg.Address, "db", cfg.DB)

	return rs, nil
}

// initSchema initializes or validates the schema version
func (r *RedisStore) initSchema(ctx context.Context) error {
	existingVersion, err := r.client.Get(ctx, keySchemaVersion).Result()
	if err == redis.Nil {
		return r.client.Set(ctx, keySchemaVersion, currentSchemaVersion, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if existingVersion != currentSchemaVersion {
		return fmt.Errorf("unsupported schema version: %s (expected: %s)", existingVersion, currentSchemaVersion)
	}
	return nil
}

// Set writes value under key.
func (r *RedisStore) Set(key string, value []byte) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("store is closed")
	}

	if err := r.client.Set(context.Background(), key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Get returns the value under key, or (nil, nil) if absent.
func (r *RedisStore) Get(key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("store is closed")
	}

	data, err := r.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, nil // Not found is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *RedisStore) Delete(key string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("store is closed")
	}

	if err := r.client.Del(context.Background(), key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// List returns the values of all keys with the given prefix, scanning in
// batches to avoid blocking the server.
func (r *RedisStore) List(prefix string) ([][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("store is closed")
	}

	ctx := context.Background()

	var values [][]byte
	iter := r.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue // deleted between scan and read
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read key %s: %w", iter.Val(), err)
		}
		values = append(values, data)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %s: %w", prefix, err)
	}

	return values, nil
}

// Close shuts down the store.
func (r *RedisStore) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil // Already closed, idempotent
	}
	r.closed = true

	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	r.logger.Sugar().Info("Redis store closed")
	return nil
}

// HealthCheck verifies the store is operational.
func (r *RedisStore) HealthCheck() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("store is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.client.Ping(ctx).Err()
}
