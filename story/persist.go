package story

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// SaveKey is the fixed application key the snapshot is stored under.
const SaveKey = "hiddenPiece"

// Persister stores the serialized snapshot. Load returns nil data when nothing is saved.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// Encode serializes a snapshot.
func Encode(s GameState) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode game state: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot onto the defaults, so fields missing from older saves
// keep their default values, then repairs any broken invariant.
func Decode(data []byte) (GameState, error) {
	s := DefaultState()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultState(), fmt.Errorf("decode game state: %w", err)
	}
	s.normalize()
	return s, nil
}

// MemoryPersister keeps the snapshot in memory.
type MemoryPersister struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// Load returns the stored snapshot.
func (m *MemoryPersister) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

// Save replaces the stored snapshot.
func (m *MemoryPersister) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

// Clear drops the stored snapshot.
func (m *MemoryPersister) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryPersister) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
