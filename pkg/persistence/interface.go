package persistence

// Store is a durable mapping from string key to opaque bytes. The request
// ledger layers its invariants on top of this interface; implementations only
// provide storage.
//
// All implementations must be thread-safe. Key namespacing is the caller's
// concern (derive keys with an instance prefix).
type Store interface {
	// Set writes value under key, overwriting any existing value.
	Set(key string, value []byte) error

	// Get returns the value stored under key, or (nil, nil) if the key is
	// absent. Errors are reserved for storage failures.
	Get(key string) ([]byte, error)

	// Delete removes key. Idempotent: deleting an absent key is not an error.
	Delete(key string) error

	// List returns the values of every key with the given prefix, in no
	// guaranteed order.
	List(prefix string) ([][]byte, error)

	// Close cleanly shuts down the store. Idempotent. After Close, all other
	// operations return errors.
	Close() error

	// HealthCheck verifies the store is operational.
	HealthCheck() error
}
