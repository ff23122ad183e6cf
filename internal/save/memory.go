package save

import (
	"context"
	"sync"
)

// MemoryStore keeps profiles in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]map[string]int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]map[string]int)}
}

// Load returns a copy of the profile's values.
func (s *MemoryStore) Load(ctx context.Context, profile string) (map[string]int, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	kv, ok := s.profiles[profile]
	if !ok {
		return nil, false, nil
	}
	return cloneValues(kv), true, nil
}

// Save merges kv into the profile.
func (s *MemoryStore) Save(ctx context.Context, profile string, kv map[string]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.profiles[profile]
	if !ok {
		cur = make(map[string]int, len(kv))
		s.profiles[profile] = cur
	}
	for k, v := range kv {
		cur[k] = v
	}
	return nil
}
