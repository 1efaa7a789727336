package persistence

import (
	"testing"

	"github.com/peerlink-labs/walletauth-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewStore_Memory(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	store, err := NewStore(&config.Config{StoreType: config.StoreTypeMemory}, logger)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("k", []byte("v")))
	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestNewStore_Badger(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	store, err := NewStore(&config.Config{
		StoreType: config.StoreTypeBadger,
		DataPath:  t.TempDir(),
	}, logger)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.NoError(t, store.HealthCheck())
}

func TestNewStore_ValidatesConfig(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	// Badger without a data path fails validation before anything opens.
	_, err := NewStore(&config.Config{StoreType: config.StoreTypeBadger}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataPath")

	// Redis without an address likewise.
	_, err = NewStore(&config.Config{StoreType: config.StoreTypeRedis}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redisAddress")

	_, err = NewStore(&config.Config{StoreType: "etcd"}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storeType")

	_, err = NewStore(nil, logger)
	require.Error(t, err)
}
