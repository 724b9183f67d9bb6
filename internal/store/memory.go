// internal/store/memory.go
//
// In-memory saved-game store. Mirrors the SQLite store's contract for
// tests and for ephemeral play where durability is not required.
//
// Characteristics:
//   - Holds at most one snapshot, like a single player slot.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

// Memory is a single-slot in-memory store.
type Memory struct {
	mu    sync.RWMutex // guards saved
	saved *game.SavedGame
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save replaces the held snapshot.
func (m *Memory) Save(ctx context.Context, g game.SavedGame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := g
	m.saved = &cp
	return nil
}

// Load returns a copy of the held snapshot, or nil when empty.
func (m *Memory) Load(ctx context.Context) (*game.SavedGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.saved == nil {
		return nil, nil
	}
	cp := *m.saved
	return &cp, nil
}

// Clear drops the held snapshot.
func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = nil
	return nil
}

// HasSavedGame reports whether a snapshot is held.
func (m *Memory) HasSavedGame(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saved != nil, nil
}
