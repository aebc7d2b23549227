package store

import (
	"context"
	"sync"

	"coinbot/models"
)

// MemoryStore keeps the snapshot in process memory. It backs the "memory"
// store backend for throwaway runs and is the default fixture in service
// tests. Load and Save deep-copy so callers never share state with the
// store, matching the durable backends.
type MemoryStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: map[string]*models.Account{}}
}

func (s *MemoryStore) Load(ctx context.Context) (map[string]*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySnapshot(s.accounts), nil
}

func (s *MemoryStore) Save(ctx context.Context, accounts map[string]*models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = copySnapshot(accounts)
	return nil
}

func copySnapshot(accounts map[string]*models.Account) map[string]*models.Account {
	out := make(map[string]*models.Account, len(accounts))
	for id, acct := range accounts {
		out[id] = acct.Clone()
	}
	return out
}
