package store

import (
	"errors"
	"fmt"
)

// Sentinels wrapped by every TaskStore implementation. Test with errors.Is.
var (
	ErrNotFound = errors.New("entity not found")

	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity means a column constraint (NOT NULL, CHECK, length)
	// rejected the row. The wrapped driver error names the constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
)

// IsNotFoundError reports whether err wraps ErrNotFound.
func IsNotFoundError(err error) bool { return errors.Is(err, ErrNotFound) }

// IsDuplicateError reports whether err wraps ErrDuplicate.
func IsDuplicateError(err error) bool { return errors.Is(err, ErrDuplicate) }

// StoreError records which operation on which entity failed.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	msg := e.Operation + " operation on " + e.Entity + " failed: " + e.Message
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError builds a StoreError; err may be nil.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Message: message, Err: err}
}
