package storage

import (
	"context"
	"errors"
	"sync"
)

// MemoryStorage is an in-process ObjectStorage used in tests and local
// development. It records every delete request so tests can assert that
// replacing a media-backed row asked for the old object's removal.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string

	// FailUploads makes every Upload call error, for failure-path tests.
	FailUploads bool
	// FailDeletes makes every Delete call error.
	FailDeletes bool
}

var _ ObjectStorage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

func (m *MemoryStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	if m.FailUploads {
		return "", errors.New("upload rejected")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[key] = buf
	return "https://storage.example.com/" + key, nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, key)
	if m.FailDeletes {
		return errors.New("delete rejected")
	}
	delete(m.objects, key)
	return nil
}

// Has reports whether an object is currently stored under key.
func (m *MemoryStorage) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Keys returns the keys of every stored object, in no particular order.
func (m *MemoryStorage) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.objects))
	for k := range m.objects {
		out = append(out, k)
	}
	return out
}

// Deleted returns every key a removal was requested for, in order.
func (m *MemoryStorage) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.deleted))
	copy(out, m.deleted)
	return out
}
