package store

import "fmt"

// PersistenceError wraps any I/O failure from the underlying database.
// Write-path failures must always reach the caller; only the startup load
// path is allowed to degrade (see tracker).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("ledger store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
