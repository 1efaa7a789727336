package config

import (
	"fmt"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for walletauth configuration
const (
	EnvStoreType     = "WALLETAUTH_STORE_TYPE"
	EnvDataPath      = "WALLETAUTH_DATA_PATH"
	EnvRedisAddress  = "WALLETAUTH_REDIS_ADDRESS"
	EnvRedisPassword = "WALLETAUTH_REDIS_PASSWORD"
	EnvRedisDB       = "WALLETAUTH_REDIS_DB"
	EnvVerbose       = "WALLETAUTH_VERBOSE"
)

// StoreType selects the persistence backend for the request ledger.
type StoreType string

func (s StoreType) String() string {
	return string(s)
}

const (
	StoreTypeBadger StoreType = "badger"
	StoreTypeRedis  StoreType = "redis"
	StoreTypeMemory StoreType = "memory" // testing only
)

type ChainId uint64

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

// eip155Namespace is the CAIP-2 namespace for EVM chains.
const eip155Namespace = "eip155"

// ParseEip155ChainId extracts the numeric chain id from a CAIP-2 identifier
// such as "eip155:1". A bare numeric string is accepted as well.
func ParseEip155ChainId(chainId string) (ChainId, error) {
	ref := chainId
	if namespace, rest, found := strings.Cut(chainId, ":"); found {
		if namespace != eip155Namespace {
			return 0, fmt.Errorf("unsupported chain namespace: %q", namespace)
		}
		ref = rest
	}

	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain id %q: %w", chainId, err)
	}
	return ChainId(id), nil
}

// Eip155ChainId renders a numeric chain id as its CAIP-2 identifier.
func Eip155ChainId(chain ChainId) string {
	return fmt.Sprintf("%s:%d", eip155Namespace, uint64(chain))
}

// Config holds the runtime configuration for the walletauth library
// consumers: which persistence backend backs the request ledger and which RPC
// endpoints serve contract-based signature verification.
type Config struct {
	StoreType StoreType `json:"store_type"`

	// DataPath is the on-disk location for the badger backend.
	DataPath string `json:"data_path,omitempty"`

	// Redis connection settings, used when StoreType is redis.
	RedisAddress  string `json:"redis_address,omitempty"`
	RedisPassword string `json:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty"`

	// RpcUrls maps chain id to the RPC endpoint used for contract-based
	// signature verification on that chain.
	RpcUrls map[ChainId]string `json:"rpc_urls,omitempty"`

	Verbose bool `json:"verbose"`
}

// Validate checks the configuration for the selected backend.
func (c *Config) Validate() error {
	var allErrors field.ErrorList

	switch c.StoreType {
	case StoreTypeBadger:
		if c.DataPath == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("dataPath"), "dataPath is required for the badger store"))
		}
	case StoreTypeRedis:
		if c.RedisAddress == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("redisAddress"), "redisAddress is required for the redis store"))
		}
		if c.RedisDB < 0 || c.RedisDB > 15 {
			allErrors = append(allErrors, field.Invalid(field.NewPath("redisDB"), c.RedisDB, "must be between 0 and 15"))
		}
	case StoreTypeMemory:
		// nothing to validate
	default:
		allErrors = append(allErrors, field.NotSupported(field.NewPath("storeType"), c.StoreType, []string{
			StoreTypeBadger.String(), StoreTypeRedis.String(), StoreTypeMemory.String(),
		}))
	}

	for chain, url := range c.RpcUrls {
		if url == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("rpcUrls").Key(fmt.Sprintf("%d", chain)), "RPC URL cannot be empty"))
		}
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}
