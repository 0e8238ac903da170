package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")
	ErrSelfVote      = errors.New("cannot vote on own content")
)

// StateReason names the lifecycle rule an operation violated.
type StateReason string

const (
	ReasonQuestionClosed  StateReason = "QUESTION_CLOSED"
	ReasonAlreadyAccepted StateReason = "ALREADY_ACCEPTED"
	ReasonNotAccepted     StateReason = "NOT_ACCEPTED"
	ReasonAlreadyClosed   StateReason = "ALREADY_CLOSED"
	ReasonNotClosed       StateReason = "NOT_CLOSED"
)

// StateError is returned when a lifecycle transition is not allowed
// from the current state. It unwraps to ErrInvalidState.
type StateError struct {
	Reason StateReason
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Reason)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// NewStateError creates a StateError for the given reason.
func NewStateError(reason StateReason) *StateError {
	return &StateError{Reason: reason}
}

// IsStateReason reports whether err carries a StateError with the given reason.
func IsStateReason(err error, reason StateReason) bool {
	var se *StateError
	return errors.As(err, &se) && se.Reason == reason
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
