package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBet rejects non-positive bet amounts before the wager engine is
// consulted.
var ErrInvalidBet = errors.New("bet must be a positive number of coins")

// InsufficientFundsError is returned when a bet exceeds the user's balance.
type InsufficientFundsError struct {
	Needed  int64
	Balance int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: have %d, need %d", e.Balance, e.Needed)
}

// Shortfall is how many more coins the user needs to cover the bet.
func (e *InsufficientFundsError) Shortfall() int64 {
	return e.Needed - e.Balance
}

// CooldownActiveError is returned when a rate-limited action is used before
// its window has elapsed.
type CooldownActiveError struct {
	Action    string
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("%s is on cooldown for another %s", e.Action, e.Remaining)
}
