package session

import (
	"context"
	"sync"

	"covid-triage-bot/internal/triage"
)

// MemoryStore is an in-process state store for local runs and tests. State
// is copied on the way in and out so callers cannot mutate stored state
// behind the store's back.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]triage.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]triage.State)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*triage.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[sessionID]
	if !ok {
		return nil, nil
	}
	copied := state
	copied.Labels = append(triage.LabelSet(nil), state.Labels...)
	return &copied, nil
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, state *triage.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *state
	copied.Labels = append(triage.LabelSet(nil), state.Labels...)
	s.states[sessionID] = copied
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}
