package models

// DailyResult reports a successful daily claim.
type DailyResult struct {
	Amount     int64
	NewBalance int64
}

// BegResult reports a successful beg.
type BegResult struct {
	Amount     int64
	NewBalance int64
}

// RollResult reports a resolved dice wager.
type RollResult struct {
	Draw       int
	Won        bool
	Delta      int64 // signed balance change
	Payout     int64 // total returned on a win, 0 on a loss
	NewBalance int64
}

// LeaderboardEntry is one row of the ranked top-N view. Resolving the user
// ID to a display name is left to the chat layer.
type LeaderboardEntry struct {
	Rank    int
	UserID  string
	Balance int64
}
