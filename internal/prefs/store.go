// Package prefs remembers each visitor's theme choice.
package prefs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/theme"
)

var ErrClosed = errors.New("prefs: store closed")

// Store keeps one theme per visitor id.
type Store interface {
	Get(ctx context.Context, visitor string) (theme.Theme, bool, error)
	Set(ctx context.Context, visitor string, t theme.Theme) error
	Cleanup(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

type memoryEntry struct {
	theme   theme.Theme
	updated time.Time
}

// MemoryStore is used when no database is configured. Preferences are lost
// on restart; the visitor's cookie still carries the theme.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	closed  bool
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context, visitor string) (theme.Theme, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return theme.Light, false, ErrClosed
	}
	e, ok := m.entries[visitor]
	return e.theme, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, visitor string, t theme.Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.entries[visitor] = memoryEntry{theme: t, updated: m.now()}
	return nil
}

func (m *MemoryStore) Cleanup(_ context.Context, olderThan time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}
	cutoff := m.now().Add(-olderThan)
	var n int64
	for id, e := range m.entries {
		if e.updated.Before(cutoff) {
			delete(m.entries, id)
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
