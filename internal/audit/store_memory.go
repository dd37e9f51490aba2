package audit

import (
	"context"
	"sync"
)

// InMemoryStore keeps events in append order. It serves tests and deployments
// that do not need durable audit history.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByAccount(_ context.Context, accountID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, event := range s.events {
		if accountID == "" || event.AccountID == accountID {
			out = append(out, event)
		}
	}
	return out, nil
}
