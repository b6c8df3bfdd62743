package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity id does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError marks semantically invalid input. It maps to a 400 and is
// never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError marks an operation blocked by a referential-integrity
// business rule; the caller has to resolve the dependents first.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func conflictErr(message string) error {
	return &ConflictError{Message: message}
}
