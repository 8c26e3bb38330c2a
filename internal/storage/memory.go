package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory KV. It backs tests and lets the portal run
// without Redis in development; contents are lost on restart.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (s *MemoryKV) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (s *MemoryKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *MemoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Len returns the number of stored keys.
func (s *MemoryKV) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}
