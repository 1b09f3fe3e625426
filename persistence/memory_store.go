package persistence

import "sync"

// MemoryStore is a `KeyValueStore` that lives for the process only.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]interface{}
	pending map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:  map[string]interface{}{},
		pending: map[string]interface{}{},
	}
}

func (s *MemoryStore) GetBool(key string, def bool) bool {
	if v, ok := s.get(key).(bool); ok {
		return v
	}
	return def
}

func (s *MemoryStore) GetLong(key string, def int64) int64 {
	if v, ok := s.get(key).(int64); ok {
		return v
	}
	return def
}

func (s *MemoryStore) GetString(key string, def string) string {
	if v, ok := s.get(key).(string); ok {
		return v
	}
	return def
}

func (s *MemoryStore) PutBool(key string, value bool)     { s.put(key, value) }
func (s *MemoryStore) PutLong(key string, value int64)    { s.put(key, value) }
func (s *MemoryStore) PutString(key string, value string) { s.put(key, value) }

// Commit publishes staged puts. It never fails.
func (s *MemoryStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.pending {
		s.values[k] = v
	}
	s.pending = map[string]interface{}{}
	return nil
}

func (s *MemoryStore) get(key string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *MemoryStore) put(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = value
}
