package storage

import (
	"sync"
	"time"
)

type memoryEntry struct {
	token  string
	expiry time.Time
}

// memoryStore keeps tokens for the lifetime of the process.
type memoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func newMemoryStore(opts Options) *memoryStore {
	return &memoryStore{
		ttl:     opts.TokenTTL,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) Token(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	if !e.expiry.After(m.now()) {
		delete(m.entries, key)
		return "", false, nil
	}
	return e.token, true, nil
}

func (m *memoryStore) SaveToken(key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{token: token, expiry: m.now().Add(m.ttl)}
	return nil
}

func (m *memoryStore) Forget(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
