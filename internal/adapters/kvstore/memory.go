package kvstore

import (
	"context"
	"sync"

	"github.com/dkolev/gymtrack/internal/core/domain"
)

var _ domain.KVStore = (*Memory)(nil)

// Memory is the in-memory KVStore used in tests and for ephemeral runs.
type Memory struct {
	store map[string][]byte

	mu sync.RWMutex
}

func NewMemory() *Memory {
	return &Memory{
		store: make(map[string][]byte),
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.store[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.store[key] = stored
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.store, key)
	return nil
}
