package theme

import "sync"

// Store is a durable key-value store for visitor preferences.
//
// Implementations must not fail past the caller: when the backing store is
// unavailable, Get reports not-ok and Set does nothing.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// storedTheme reads a valid theme from store. Missing stores, missing keys and
// unparseable values all read as "no preference".
func storedTheme(store Store) (Theme, bool) {
	if store == nil {
		return "", false
	}
	raw, ok := store.Get(PreferenceKey)
	if !ok {
		return "", false
	}
	t, err := Parse(raw)
	if err != nil {
		return "", false
	}
	return t, true
}
