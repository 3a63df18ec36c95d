package audit

import (
	"context"
	"fmt"
	"sync"
)

// DEFAULT_MEMORY_CAPACITY is the number of entries an in-memory store keeps
const DEFAULT_MEMORY_CAPACITY = 10000

// InMemoryStore keeps the latest audit entries in process memory. Once full,
// each new entry replaces the oldest one
type InMemoryStore struct {
	entries []Entry // ring buffer, oldest entry at start
	start   int
	count   int
	mutex   sync.RWMutex
}

// NewInMemoryStore creates a new in-memory audit store holding up to
// DEFAULT_MEMORY_CAPACITY entries
func NewInMemoryStore() *InMemoryStore {
	return NewInMemoryStoreWithCapacity(DEFAULT_MEMORY_CAPACITY)
}

// NewInMemoryStoreWithCapacity creates an in-memory audit store holding up to
// capacity entries. A capacity below 1 is raised to 1
func NewInMemoryStoreWithCapacity(capacity int) *InMemoryStore {
	if capacity < 1 {
		capacity = 1
	}
	return &InMemoryStore{entries: make([]Entry, capacity)}
}

// Record stores a new entry, dropping the oldest one when the store is full
func (s *InMemoryStore) Record(_ context.Context, entry Entry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	capacity := len(s.entries)
	if s.count < capacity {
		s.entries[(s.start+s.count)%capacity] = prepare(entry)
		s.count++
		return nil
	}

	s.entries[s.start] = prepare(entry)
	s.start = (s.start + 1) % capacity
	return nil
}

// ListByRecordID returns copies of the entries of a record, oldest first
func (s *InMemoryStore) ListByRecordID(_ context.Context, recordID string) ([]Entry, error) {
	if recordID == "" {
		return nil, fmt.Errorf("record_id cannot be empty")
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries := []Entry{}
	for i := 0; i < s.count; i++ {
		entry := s.entries[(s.start+i)%len(s.entries)]
		if entry.RecordID == recordID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Close is a no-op for the in-memory store
func (s *InMemoryStore) Close() error {
	return nil
}
