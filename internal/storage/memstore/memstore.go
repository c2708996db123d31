package memstore

import (
	"context"
	"sync"

	"github.com/rowanvale/templateboard/internal/storage"
)

// MemStore is a map-backed Storage. It backs tests and boards that do not
// need their contents to outlive the process.
type MemStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func New() *MemStore {
	return &MemStore{
		items: map[string][]byte{},
	}
}

func (s *MemStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	if !ok {
		return nil, storage.ErrNotExist
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.items[key] = stored
	return nil
}

func (s *MemStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[key]; !ok {
		return storage.ErrNotExist
	}
	delete(s.items, key)
	return nil
}
