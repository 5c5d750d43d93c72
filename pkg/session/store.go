package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/cache"
)

// Store persists session records keyed by session ID.
// Two drivers ship: "redis" for production and "memory" for tests and
// single-node development.
type Store interface {
	Load(id string) (map[string]interface{}, bool)
	Save(id string, data map[string]interface{}, ttl time.Duration) error
	Delete(id string) error
}

// ─── Redis driver ─────────────────────────────────────────────────────────────

type redisStore struct{}

// NewRedisStore returns a Store backed by the shared Redis client.
func NewRedisStore() Store { return &redisStore{} }

func redisKey(id string) string { return "stark:session:" + id }

func (s *redisStore) Load(id string) (map[string]interface{}, bool) {
	var data map[string]interface{}
	if cache.Get(redisKey(id), &data) {
		return data, true
	}
	return nil, false
}

func (s *redisStore) Save(id string, data map[string]interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := cache.Set(redisKey(id), json.RawMessage(raw), ttl); err != nil {
		return fmt.Errorf("session: redis save: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(id string) error {
	return cache.Del(redisKey(id))
}

// ─── Memory driver ────────────────────────────────────────────────────────────

type memoryEntry struct {
	data      map[string]interface{}
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore returns an in-process Store. Sessions do not survive a
// restart and are not shared between nodes.
func NewMemoryStore() Store {
	return &memoryStore{entries: map[string]memoryEntry{}}
}

func (s *memoryStore) Load(id string) (map[string]interface{}, bool) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	// Copy so callers cannot mutate the stored map without Save.
	data := make(map[string]interface{}, len(entry.data))
	for k, v := range entry.data {
		data[k] = v
	}
	return data, true
}

func (s *memoryStore) Save(id string, data map[string]interface{}, ttl time.Duration) error {
	copied := make(map[string]interface{}, len(data))
	for k, v := range data {
		copied[k] = v
	}

	s.mu.Lock()
	s.entries[id] = memoryEntry{data: copied, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}
