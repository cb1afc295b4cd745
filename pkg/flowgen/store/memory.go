package store

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory flow archive for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]storedFlow
	closed bool
}

// storedFlow holds a document with metadata for List().
type storedFlow struct {
	data      []byte
	createdAt time.Time
}

// NewMemoryStore creates a new in-memory flow archive.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]storedFlow),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(graphID string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	// Copy data to avoid retaining caller's slice
	stored := make([]byte, len(data))
	copy(stored, data)

	createdAt := time.Now().UTC()
	if existing, ok := m.data[graphID]; ok {
		createdAt = existing.createdAt
	}
	m.data[graphID] = storedFlow{data: stored, createdAt: createdAt}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(graphID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	flow, ok := m.data[graphID]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent modification
	result := make([]byte, len(flow.data))
	copy(result, flow.data)
	return result, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.data))
	for graphID, flow := range m.data {
		infos = append(infos, Info{
			GraphID:   graphID,
			CreatedAt: flow.createdAt,
			Size:      int64(len(flow.data)),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].GraphID < infos[j].GraphID
		}
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})

	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(graphID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, graphID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the number of archived flows. Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
