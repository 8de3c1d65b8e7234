// Package domain contains the content administration entities and their errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// Adapters decide how each kind is surfaced (flash + redirect, JSON envelope, ...).
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist in the given scope.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates entity attributes failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the persistence store cannot be reached.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError carries one message per invalid attribute.
type ValidationError struct {
	Entity string
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s is invalid", e.Entity)
	}

	return fmt.Sprintf("%s is invalid: %s", e.Entity, strings.Join(e.Messages(), "; "))
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Messages returns "field message" pairs sorted by field name.
func (e *ValidationError) Messages() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, field+" "+e.Fields[field])
	}

	return msgs
}

// NewValidationError creates a validation error for a single attribute.
func NewValidationError(entity, field, message string) error {
	return &ValidationError{Entity: entity, Fields: map[string]string{field: message}}
}

// NewValidationErrorWithFields creates a validation error for several attributes.
func NewValidationErrorWithFields(entity string, fields map[string]string) error {
	return &ValidationError{Entity: entity, Fields: fields}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s temporarily unavailable: %s", e.Service, e.Reason)
	}

	return e.Service + " temporarily unavailable"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
