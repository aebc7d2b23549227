package store

import (
	"fmt"
)

// StorageError wraps a failure to read or write the persisted snapshot.
// It is an operator-facing condition: the command that hit it is aborted and
// the error logged. Corrupt data in particular must surface as a
// StorageError instead of being replaced with a fresh empty ledger.
type StorageError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
