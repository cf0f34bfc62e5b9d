package dashboard

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the mutation target id is not in the store.
	// Under correct client usage this should never happen.
	ErrNotFound = errors.New("record not found")

	// ErrNotAllowed means the current mode does not permit the operation.
	ErrNotAllowed = errors.New("operation not allowed in this mode")
)

const (
	ReasonRequired      = "required"
	ReasonInvalidFormat = "invalid format"
)

// ValidationError rejects a create/update before the store changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: ReasonRequired}
}

func InvalidFormat(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: ReasonInvalidFormat}
}
