package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

// MemoryStore is a concurrency-safe in-process snapshot store.
// It keeps the encoded record so readers always get their own copy.
type MemoryStore struct {
	mu sync.RWMutex

	// key: snapshot key, value: encoded snapshot
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(_ context.Context, snapshot weather.DailySuggestions) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("WARN: memory store: encode snapshot: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[SnapshotKey] = payload
}

// Load returns the stored snapshot, if any.
func (s *MemoryStore) Load(_ context.Context) (weather.DailySuggestions, bool) {
	s.mu.RLock()
	payload, ok := s.data[SnapshotKey]
	s.mu.RUnlock()

	if !ok {
		return weather.DailySuggestions{}, false
	}
	return decodeSnapshot(payload)
}
