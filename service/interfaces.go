package service

import (
	"context"

	"coinbot/events"
	"coinbot/models"
)

// Store is the durable home of the account snapshot. The snapshot is loaded
// and saved as a single unit; the service layer holds no copy across calls,
// so the store is the single source of truth.
type Store interface {
	// Load returns the full current snapshot, or an empty map when nothing
	// has been persisted yet.
	Load(ctx context.Context) (map[string]*models.Account, error)

	// Save persists the full snapshot, replacing prior content. A partially
	// written snapshot must never be observable by a subsequent Load.
	Save(ctx context.Context, accounts map[string]*models.Account) error
}

// Rand supplies dice draws and beg amounts. *math/rand.Rand satisfies it;
// tests inject a deterministic implementation.
type Rand interface {
	Intn(n int) int
}

// AccountService owns all reads and writes of account state.
type AccountService interface {
	// GetOrCreate returns the user's account, materializing it with the
	// starting balance on first access. Creation is persisted exactly once.
	GetOrCreate(ctx context.Context, userID string) (*models.Account, error)

	// Apply runs a field-level mutation against the user's account (created
	// first if absent) as one serialized read-modify-write cycle. The
	// mutation returning an error aborts the call without persisting
	// anything, as does a mutation that would leave the balance negative.
	Apply(ctx context.Context, userID string, reason string, mutate func(*models.Account) error) (*models.Account, error)

	// Snapshot returns the full current account snapshot.
	Snapshot(ctx context.Context) (map[string]*models.Account, error)
}

// EconomyService covers the timed earning actions.
type EconomyService interface {
	// ClaimDaily grants the daily amount once per daily window.
	ClaimDaily(ctx context.Context, userID string) (*models.DailyResult, error)

	// Beg grants a small random amount once per beg window.
	Beg(ctx context.Context, userID string) (*models.BegResult, error)
}

// GamblingService covers the dice wager.
type GamblingService interface {
	// Roll resolves a dice bet against the configured rules. The bet must be
	// positive and covered by the user's balance.
	Roll(ctx context.Context, userID string, bet int64) (*models.RollResult, error)
}

// StatsService exposes ranked views over all accounts.
type StatsService interface {
	// GetLeaderboard returns at most limit entries sorted by balance
	// descending.
	GetLeaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}
