package redis

import (
	"os"
	"testing"

	"github.com/peerlink-labs/walletauth-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getTestRedisAddress returns the Redis address for testing.
// Uses REDIS_TEST_ADDRESS env var if set, otherwise defaults to localhost:6379.
func getTestRedisAddress() string {
	if addr := os.Getenv("REDIS_TEST_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// requireRedis skips the test if Redis is not reachable.
func requireRedis(t *testing.T) *RedisStore {
	t.Helper()

	testLogger, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	cfg := &RedisConfig{
		Address: getTestRedisAddress(),
		DB:      15, // Use DB 15 for tests to avoid conflicts
	}

	rs, err := NewRedisStore(cfg, testLogger)
	if err != nil {
		t.Skipf("Redis not available at %s: %v", cfg.Address, err)
		return nil
	}
	return rs
}

func TestRedisStore_Config(t *testing.T) {
	testLogger, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})

	_, err := NewRedisStore(nil, testLogger)
	require.Error(t, err)

	_, err = NewRedisStore(&RedisConfig{}, testLogger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address")
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	store := requireRedis(t)
	defer func() { _ = store.Close() }()

	key := "walletauth:test:request:1"
	defer func() { _ = store.Delete(key) }()

	require.NoError(t, store.Set(key, []byte("a")))

	value, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), value)

	require.NoError(t, store.Delete(key))

	value, err = store.Get(key)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestRedisStore_List(t *testing.T) {
	store := requireRedis(t)
	defer func() { _ = store.Close() }()

	keys := []string{"walletauth:test:list:1", "walletauth:test:list:2"}
	defer func() {
		for _, key := range keys {
			_ = store.Delete(key)
		}
	}()

	require.NoError(t, store.Set(keys[0], []byte("a")))
	require.NoError(t, store.Set(keys[1], []byte("b")))

	values, err := store.List("walletauth:test:list:")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]byte{[]byte("a"), []byte("b")}, values)
}

func TestRedisStore_HealthAndClose(t *testing.T) {
	store := requireRedis(t)

	assert.NoError(t, store.HealthCheck())

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
	assert.Error(t, store.HealthCheck())
}
