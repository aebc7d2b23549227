package service

import (
	"context"
	"fmt"
	"sync"

	"coinbot/events"
	"coinbot/models"
)

// accountService implements AccountService over a snapshot Store.
//
// Every call runs a full load-mutate-save cycle under one mutex. The store
// persists the whole snapshot as a single unit, so concurrent writers for
// any pair of users would otherwise lose updates, not just writers for the
// same user.
type accountService struct {
	mu              sync.Mutex
	store           Store
	publisher       EventPublisher
	startingBalance int64
}

// NewAccountService creates a new account service
func NewAccountService(store Store, publisher EventPublisher, startingBalance int64) AccountService {
	return &accountService{
		store:           store,
		publisher:       publisher,
		startingBalance: startingBalance,
	}
}

// GetOrCreate retrieves an existing account or creates a new one with the
// starting balance. Only the creating call writes to the store.
func (s *accountService) GetOrCreate(ctx context.Context, userID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	if acct, ok := accounts[userID]; ok {
		return acct, nil
	}

	acct := models.NewAccount(s.startingBalance)
	accounts[userID] = acct
	if err := s.store.Save(ctx, accounts); err != nil {
		return nil, fmt.Errorf("failed to persist new account for user %s: %w", userID, err)
	}

	s.publisher.Emit(ctx, events.AccountCreatedEvent{
		UserID:         userID,
		InitialBalance: s.startingBalance,
	})
	return acct, nil
}

// Apply re-reads the snapshot, runs the mutation against the user's account
// and writes the snapshot back. Nothing is persisted when the mutation
// returns an error or would leave the balance negative.
func (s *accountService) Apply(ctx context.Context, userID string, reason string, mutate func(*models.Account) error) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	acct, ok := accounts[userID]
	created := false
	if !ok {
		acct = models.NewAccount(s.startingBalance)
		accounts[userID] = acct
		created = true
	}

	oldBalance := acct.Balance
	if err := mutate(acct); err != nil {
		return nil, err
	}
	if acct.Balance < 0 {
		return nil, fmt.Errorf("%s mutation would leave user %s with negative balance %d", reason, userID, acct.Balance)
	}

	if err := s.store.Save(ctx, accounts); err != nil {
		return nil, fmt.Errorf("failed to persist accounts: %w", err)
	}

	if created {
		s.publisher.Emit(ctx, events.AccountCreatedEvent{
			UserID:         userID,
			InitialBalance: s.startingBalance,
		})
	}
	if acct.Balance != oldBalance {
		s.publisher.Emit(ctx, events.BalanceChangeEvent{
			UserID:       userID,
			OldBalance:   oldBalance,
			NewBalance:   acct.Balance,
			ChangeAmount: acct.Balance - oldBalance,
			Reason:       reason,
		})
	}
	return acct, nil
}

// Snapshot returns the full current account snapshot.
func (s *accountService) Snapshot(ctx context.Context) (map[string]*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return accounts, nil
}
