package models

import (
	"time"
)

// Account is a single user's persisted economy record. The timestamp fields
// are nil until the corresponding action has been performed at least once,
// and are omitted from the persisted document while nil.
type Account struct {
	Balance   int64      `json:"balance"`
	LastDaily *time.Time `json:"last_daily,omitempty"`
	LastBeg   *time.Time `json:"last_beg,omitempty"`
	LastRoll  *time.Time `json:"last_roll,omitempty"`
}

// NewAccount returns a fresh account with the starting balance and no
// action history.
func NewAccount(startingBalance int64) *Account {
	return &Account{Balance: startingBalance}
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	clone := &Account{Balance: a.Balance}
	if a.LastDaily != nil {
		t := *a.LastDaily
		clone.LastDaily = &t
	}
	if a.LastBeg != nil {
		t := *a.LastBeg
		clone.LastBeg = &t
	}
	if a.LastRoll != nil {
		t := *a.LastRoll
		clone.LastRoll = &t
	}
	return clone
}
