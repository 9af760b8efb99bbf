package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrIntegrity indicates that the journal data itself is corrupt: an
// entry references an unknown account, debits and credits the same
// account, or carries a negative amount. Reports must not be produced
// from such data.
var ErrIntegrity = errors.New("journal data integrity violation")

// IntegrityError names the offending journal entry so the caller can
// surface it. It wraps ErrIntegrity for errors.Is checks.
type IntegrityError struct {
	EntryID string
	Reason  string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("journal entry %s: %s", e.EntryID, e.Reason)
}

func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}

// NewIntegrityError builds an IntegrityError for the given entry.
func NewIntegrityError(entryID, format string, args ...any) *IntegrityError {
	return &IntegrityError{EntryID: entryID, Reason: fmt.Sprintf(format, args...)}
}
