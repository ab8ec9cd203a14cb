package pantry

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an unknown item id.
var ErrNotFound = errors.New("item not found")

// ValidationError reports a missing or malformed field. The item is not
// created or updated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError reports a failed mirror write. The in-memory collection
// keeps the mutation; only the mirror is out of date.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
