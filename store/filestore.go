package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"coinbot/models"
)

// FileStore persists the full account snapshot as a single JSON document:
//
//	{"<user_id>": {"balance": 100, "last_daily": "2026-08-30T12:00:00Z"}, ...}
//
// Timestamps are RFC 3339 strings and unknown fields are ignored on load, so
// documents written by newer versions remain readable.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the JSON document at path. The file
// is created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the current snapshot. A missing file means nothing has been
// persisted yet and yields an empty snapshot; anything else that prevents a
// full decode is a StorageError.
func (s *FileStore) Load(ctx context.Context) (map[string]*models.Account, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]*models.Account{}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}

	var accounts map[string]*models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, &StorageError{Op: "load", Err: fmt.Errorf("corrupt snapshot %s: %w", s.path, err)}
	}
	if accounts == nil {
		accounts = map[string]*models.Account{}
	}
	return accounts, nil
}

// Save replaces the persisted snapshot. The document is written to a
// temporary file in the same directory and renamed over the target, so a
// crash mid-write leaves the previous snapshot intact.
func (s *FileStore) Save(ctx context.Context, accounts map[string]*models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
