package db

import (
	"errors"
	"fmt"
)

// ErrNotFound means the requested transaction id is absent. Handlers map
// it to 404; everything else coming out of this package is a
// *PersistenceError and maps to 500.
var ErrNotFound = errors.New("transaction not found")

// PersistenceError wraps a connection, query or commit failure. The
// original cause stays reachable through Unwrap for logging.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
