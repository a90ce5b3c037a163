package db

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ldmoreira/fuellog/internal/apperr"
)

// MemoryRecordStore is an in-memory RecordStore used by tests and ephemeral
// runs. Values are kept as marshaled JSON so the round-trip behavior is
// identical to the Mongo-backed store.
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryRecordStore returns an empty in-memory store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{records: make(map[string][]byte)}
}

// Get decodes the value stored under key into out.
func (s *MemoryRecordStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, apperr.NewStorage("get", key, err)
	}
	return true, nil
}

// Set stores value under key.
func (s *MemoryRecordStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperr.NewStorage("set", key, err)
	}
	s.mu.Lock()
	s.records[key] = raw
	s.mu.Unlock()
	return nil
}

// Remove deletes key.
func (s *MemoryRecordStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored keys.
func (s *MemoryRecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
