package service

import (
	"sort"

	"coinbot/models"
)

// TopN ranks accounts by balance descending and returns at most n entries.
// Ties break by ascending user ID so the ordering is deterministic
// regardless of map iteration order.
func TopN(accounts map[string]*models.Account, n int) []*models.LeaderboardEntry {
	entries := make([]*models.LeaderboardEntry, 0, len(accounts))
	for userID, acct := range accounts {
		entries = append(entries, &models.LeaderboardEntry{UserID: userID, Balance: acct.Balance})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].UserID < entries[j].UserID
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	for i, entry := range entries {
		entry.Rank = i + 1
	}
	return entries
}
