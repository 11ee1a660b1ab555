package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/templink/internal/shortener"
)

type memoryRecord struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-process shortener.MappingStore with the same flat,
// prefixed keyspace and TTL semantics as the Redis backend. Expired records
// are filtered on read; the map is never compacted. Used by tests and local
// development, not meant to hold a large keyspace.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

// NewMemoryStore creates an empty in-memory mapping store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]memoryRecord),
	}
}

func (m *MemoryStore) PutForward(_ context.Context, code, url string, ttl time.Duration) error {
	m.put(forwardPrefix+code, url, ttl)

	return nil
}

func (m *MemoryStore) GetForward(_ context.Context, code string) (string, bool, error) {
	url, ok := m.get(forwardPrefix + code)

	return url, ok, nil
}

func (m *MemoryStore) PutReverse(_ context.Context, url, code string, ttl time.Duration) error {
	m.put(reversePrefix+url, code, ttl)

	return nil
}

func (m *MemoryStore) GetReverse(_ context.Context, url string) (string, bool, error) {
	code, ok := m.get(reversePrefix + url)

	return code, ok, nil
}

func (m *MemoryStore) ExistsForward(_ context.Context, code string) (bool, error) {
	_, ok := m.get(forwardPrefix + code)

	return ok, nil
}

func (m *MemoryStore) put(key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = memoryRecord{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (m *MemoryStore) get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[key]
	if !ok || !time.Now().Before(rec.expiresAt) {
		return "", false
	}

	return rec.value, true
}

// Compile-time check.
var _ shortener.MappingStore = (*MemoryStore)(nil)
