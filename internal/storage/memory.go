package storage

import (
	"context"
	"sync"
)

type memoryEntry struct {
	data    []byte
	version int64
}

// MemoryStore keeps everything in process memory. Used for tests and the
// default development setup.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, 0, nil
	}
	return append([]byte(nil), entry.data...), entry.version, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, data []byte, version int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.entries[key]
	if current.version != version {
		return 0, ErrVersionConflict
	}

	next := memoryEntry{data: append([]byte(nil), data...), version: version + 1}
	s.entries[key] = next
	return next.version, nil
}

func (s *MemoryStore) Name() string {
	return "memory"
}

func (s *MemoryStore) Close() error {
	return nil
}
