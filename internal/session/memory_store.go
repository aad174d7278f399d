package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used in tests and local runs without
// Redis. No expiry.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]State)}
}

func (s *MemoryStore) Put(_ context.Context, id string, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := st
	cp.UsageSamples = append([]int(nil), st.UsageSamples...)
	s.m[id] = cp
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.m[id]
	if !ok {
		return State{}, ErrNotFound
	}
	st.UsageSamples = append([]int(nil), st.UsageSamples...)
	return st, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}
