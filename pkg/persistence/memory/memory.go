package memory

import (
	"fmt"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store implementation intended for TESTING ONLY.
// All data is lost when the process exits. Values are copied on read and
// write to prevent external mutation.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Set writes value under key.
func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("store is closed")
	}

	m.data[key] = append([]byte{}, value...)
	return nil
}

// Get returns the value under key, or (nil, nil) if absent.
func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("store is closed")
	}

	value, exists := m.data[key]
	if !exists {
		return nil, nil // Not found is not an error
	}
	return append([]byte{}, value...), nil
}

// Delete removes key. Deleting an absent key is not an error.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("store is closed")
	}

	delete(m.data, key)
	return nil
}

// List returns the values of all keys with the given prefix.
func (m *MemoryStore) List(prefix string) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("store is closed")
	}

	var values [][]byte
	for key, value := range m.data {
		if strings.HasPrefix(key, prefix) {
			values = append(values, append([]byte{}, value...))
		}
	}
	return values, nil
}

// Close shuts down the store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// HealthCheck verifies the store is operational.
func (m *MemoryStore) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return fmt.Errorf("store is closed")
	}
	return nil
}
