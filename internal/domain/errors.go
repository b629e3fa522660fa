// Package domain contains the quotebook's business types, rules and errors.
//
// Errors here describe what went wrong with a quote or a calculation, never
// how it is reported. The HTTP adapter maps each sentinel to a status code.
package domain

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by the domain, the service layer or a
// store wraps exactly one of these.
var (
	// ErrNotFound: no quote matched the given id or category.
	ErrNotFound = errors.New("not found")

	// ErrValidation: a path, query or body value was missing, malformed or
	// out of range, or a calculation produced no finite result.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable: the document store could not complete the round-trip.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names what was looked up. ID is empty for category lookups.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError carries the offending field, if any, so the adapter can
// echo it in the envelope's details.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError reports bad input. field may be empty when the problem
// is not tied to one value.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError records which store failed. Reason is for logs only.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("service %q unavailable", e.Service)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// NewUnavailableError reports a failed store round-trip.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool  { return errors.Is(err, ErrValidation) }
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
