package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClosed indicates the component has been disposed.
	ErrClosed = errors.New("closed")

	// Validation Errors.
	// These are surfaced to the user and never mutate state.

	// ErrValidation is the parent of every user-facing validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyMessage indicates a chat message with no visible content.
	ErrEmptyMessage = fmt.Errorf("%w: message is empty", ErrValidation)

	// ErrAgentNameRequired indicates an agent was created without a name.
	ErrAgentNameRequired = fmt.Errorf("%w: please enter an agent name", ErrValidation)

	// ErrNoIntegrationSelected indicates Connect was called without an open form.
	ErrNoIntegrationSelected = fmt.Errorf("%w: no integration selected", ErrValidation)
)

// FieldError reports required integration fields that were left empty.
type FieldError struct {
	// Integration is the display name of the integration being connected.
	Integration string

	// Fields lists the missing field names in schema order.
	Fields []string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("please fill in all required fields for %s: %s",
		e.Integration, strings.Join(e.Fields, ", "))
}

// Unwrap makes FieldError match ErrValidation with errors.Is.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}
