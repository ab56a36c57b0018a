package store

import (
	"context"
	"sync"
)

type memoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage returns a process-local [StorageService]. Nothing survives
// a restart.
func NewMemoryStorage() StorageService {
	return &memoryStorage{items: make(map[string]string)}
}

func (m *memoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memoryStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

func (m *memoryStorage) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}
