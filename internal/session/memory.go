package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
)

type MemoryStore[T any] struct {
	mu sync.RWMutex
	m  map[string]T

	// creating serializes GetOrCreate so create runs once per id.
	creating sync.Mutex
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{m: map[string]T{}}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[id]
	return v, ok, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = v
	return nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

func (s *MemoryStore[T]) GetOrCreate(ctx context.Context, id string, create func(ctx context.Context) (T, error)) (T, error) {
	if v, ok, _ := s.Get(ctx, id); ok {
		return v, nil
	}
	s.creating.Lock()
	defer s.creating.Unlock()
	if v, ok, _ := s.Get(ctx, id); ok {
		return v, nil
	}
	v, err := create(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, s.Put(ctx, id, v)
}

// Len reports how many entries are stored.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func (s *MemoryStore[T]) NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
