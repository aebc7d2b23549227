package service

import (
	"context"
	"fmt"

	"coinbot/models"
)

// statsService implements ranked views over the account snapshot.
type statsService struct {
	accounts AccountService
}

// NewStatsService creates a new stats service
func NewStatsService(accounts AccountService) StatsService {
	return &statsService{accounts: accounts}
}

func (s *statsService) GetLeaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	accounts, err := s.accounts.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account snapshot: %w", err)
	}
	return TopN(accounts, limit), nil
}
