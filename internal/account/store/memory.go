package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"rentora/internal/account/models"
	"rentora/pkg/platform/sentinel"
)

// InMemory keeps accounts in a map. It backs tests and single-instance
// deployments that run without PostgreSQL.
type InMemory struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*models.Account
}

func NewInMemory() *InMemory {
	return &InMemory{accounts: make(map[uuid.UUID]*models.Account)}
}

func (s *InMemory) Create(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.ID]; ok {
		return sentinel.ErrConflict
	}
	for _, existing := range s.accounts {
		if strings.EqualFold(existing.Username, account.Username) {
			return sentinel.ErrConflict
		}
	}
	clone := *account
	s.accounts[account.ID] = &clone
	return nil
}

func (s *InMemory) Update(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.ID]; !ok {
		return sentinel.ErrNotFound
	}
	for id, existing := range s.accounts {
		if id != account.ID && strings.EqualFold(existing.Username, account.Username) {
			return sentinel.ErrConflict
		}
	}
	clone := *account
	s.accounts[account.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *account
	return &clone, nil
}

func (s *InMemory) FindByUsername(_ context.Context, username string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.accounts {
		if strings.EqualFold(account.Username, username) {
			clone := *account
			return &clone, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) List(_ context.Context) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		clone := *account
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s *InMemory) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.accounts, id)
	return nil
}
