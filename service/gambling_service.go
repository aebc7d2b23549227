package service

import (
	"context"
	"time"

	"coinbot/models"
)

// gamblingService implements the dice wager on top of the account service's
// apply cycle. The draw and the balance delta resolve inside a single apply,
// so the cooldown window begins exactly when the roll resolves.
type gamblingService struct {
	accounts   AccountService
	rng        Rand
	rules      WagerRules
	rollWindow time.Duration
	now        func() time.Time
}

// NewGamblingService creates a new gambling service
func NewGamblingService(accounts AccountService, rng Rand, rules WagerRules, rollWindow time.Duration) GamblingService {
	return &gamblingService{
		accounts:   accounts,
		rng:        rng,
		rules:      rules,
		rollWindow: rollWindow,
		now:        time.Now,
	}
}

func (s *gamblingService) Roll(ctx context.Context, userID string, bet int64) (*models.RollResult, error) {
	if bet <= 0 {
		return nil, ErrInvalidBet
	}

	var result models.RollResult
	_, err := s.accounts.Apply(ctx, userID, "roll", func(acct *models.Account) error {
		now := s.now()
		if status := CheckCooldown(acct.LastRoll, now, s.rollWindow); !status.Allowed {
			return &CooldownActiveError{Action: "roll", Remaining: status.Remaining}
		}
		if bet > acct.Balance {
			return &InsufficientFundsError{Needed: bet, Balance: acct.Balance}
		}

		draw := 1 + s.rng.Intn(6)
		outcome := ResolveWager(bet, draw, s.rules)
		acct.Balance += outcome.Delta
		acct.LastRoll = &now

		result = models.RollResult{
			Draw:       draw,
			Won:        outcome.Won,
			Delta:      outcome.Delta,
			Payout:     outcome.Payout,
			NewBalance: acct.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
