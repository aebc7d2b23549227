package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"coinbot/database"
	"coinbot/models"
)

// PostgresStore persists the snapshot in the accounts table. Load reads the
// whole table and Save replaces it inside one transaction, keeping the
// snapshot the unit of consistency just like the file backend.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context) (map[string]*models.Account, error) {
	query := `
		SELECT user_id, balance, last_daily, last_beg, last_roll
		FROM accounts
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	defer rows.Close()

	accounts := map[string]*models.Account{}
	for rows.Next() {
		var userID string
		var acct models.Account
		if err := rows.Scan(&userID, &acct.Balance, &acct.LastDaily, &acct.LastBeg, &acct.LastRoll); err != nil {
			return nil, &StorageError{Op: "load", Err: fmt.Errorf("failed to scan account row: %w", err)}
		}
		accounts[userID] = &acct
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}

	return accounts, nil
}

func (s *PostgresStore) Save(ctx context.Context, accounts map[string]*models.Account) error {
	err := s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM accounts`); err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}

		query := `
			INSERT INTO accounts (user_id, balance, last_daily, last_beg, last_roll)
			VALUES ($1, $2, $3, $4, $5)
		`
		for userID, acct := range accounts {
			if _, err := tx.Exec(ctx, query, userID, acct.Balance, acct.LastDaily, acct.LastBeg, acct.LastRoll); err != nil {
				return fmt.Errorf("failed to insert account %s: %w", userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
