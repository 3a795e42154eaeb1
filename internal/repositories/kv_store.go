package repositories

import "sync"

// KeyValueStore is the persistence contract the cart writes through: one
// opaque string value per key. Get reports whether the key was present so
// callers can distinguish "never stored" from an empty value.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKeyValueStore is an in-memory implementation of KeyValueStore.
type MemoryKeyValueStore struct {
	values map[string]string
	mu     sync.RWMutex
}

// NewMemoryKeyValueStore creates a new instance of MemoryKeyValueStore.
func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key, if any.
func (s *MemoryKeyValueStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key, replacing any previous value.
func (s *MemoryKeyValueStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete removes the value stored under key; missing keys are not an error.
func (s *MemoryKeyValueStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
