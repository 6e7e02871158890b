package app

import (
	"context"
	"sort"
	"sync"

	"gorace/domain/core"
)

// MemoryStore is an in-process AnalysisStore used when no database is
// configured.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]*Analysis
}

// NewMemoryStore creates an empty in-memory analysis store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{analyses: make(map[string]*Analysis)}
}

func (m *MemoryStore) Save(_ context.Context, a *Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses[a.ID] = a
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.analyses[id]
	if !ok {
		return nil, core.NewDataNotFoundError("analysis", id)
	}
	return a, nil
}

func (m *MemoryStore) List(_ context.Context) ([]*Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Analysis, 0, len(m.analyses))
	for _, a := range m.analyses {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
