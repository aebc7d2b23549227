package service

import (
	"context"
	"time"

	"coinbot/models"
)

// Beg grants a random amount in [begMin, begMax].
const (
	begMin = 5
	begMax = 15
)

// economyService implements the timed earning actions on top of the account
// service's apply cycle.
type economyService struct {
	accounts    AccountService
	rng         Rand
	dailyAmount int64
	dailyWindow time.Duration
	begWindow   time.Duration
	now         func() time.Time
}

// NewEconomyService creates a new economy service
func NewEconomyService(accounts AccountService, rng Rand, dailyAmount int64, dailyWindow, begWindow time.Duration) EconomyService {
	return &economyService{
		accounts:    accounts,
		rng:         rng,
		dailyAmount: dailyAmount,
		dailyWindow: dailyWindow,
		begWindow:   begWindow,
		now:         time.Now,
	}
}

func (s *economyService) ClaimDaily(ctx context.Context, userID string) (*models.DailyResult, error) {
	var result models.DailyResult
	_, err := s.accounts.Apply(ctx, userID, "daily", func(acct *models.Account) error {
		now := s.now()
		if status := CheckCooldown(acct.LastDaily, now, s.dailyWindow); !status.Allowed {
			return &CooldownActiveError{Action: "daily", Remaining: status.Remaining}
		}

		acct.Balance += s.dailyAmount
		acct.LastDaily = &now
		result = models.DailyResult{Amount: s.dailyAmount, NewBalance: acct.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *economyService) Beg(ctx context.Context, userID string) (*models.BegResult, error) {
	var result models.BegResult
	_, err := s.accounts.Apply(ctx, userID, "beg", func(acct *models.Account) error {
		now := s.now()
		if status := CheckCooldown(acct.LastBeg, now, s.begWindow); !status.Allowed {
			return &CooldownActiveError{Action: "beg", Remaining: status.Remaining}
		}

		amount := int64(begMin + s.rng.Intn(begMax-begMin+1))
		acct.Balance += amount
		acct.LastBeg = &now
		result = models.BegResult{Amount: amount, NewBalance: acct.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
