// Package shared contains common domain types and errors used across
// all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
//
// The analyzer knows exactly two failure kinds: a precondition violation
// (a programming error at the call site, surfaced immediately) and an
// absent result (not an error at all - see Optional). Everything under
// ErrPrecondition is the first kind.
var (
	// ErrPrecondition is the base kind for all precondition violations.
	ErrPrecondition = errors.New("precondition violated")

	// ErrEmptySequence is returned when an operation that requires at
	// least one element receives an empty sequence.
	ErrEmptySequence = errors.New("sequence must not be empty")

	// ErrStudentWithoutMarks is returned when an operation requires every
	// student to have at least one mark and some student has none, so the
	// student's average is undefined.
	ErrStudentWithoutMarks = errors.New("student has no marks")

	// ErrDepartmentWithoutMarks is returned when a department's students
	// have no marks at all, so the department's average is undefined.
	ErrDepartmentWithoutMarks = errors.New("department has no marks")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "query", "university"
	Op      string // Operation that failed, e.g., "MinStudentAgeInYears"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// PreconditionError creates a precondition-violation error for the given
// operation. kind should be one of the sentinel errors above; it is
// wrapped together with ErrPrecondition so both match via errors.Is().
func PreconditionError(op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  "query",
		Op:      op,
		Kind:    ErrPrecondition,
		Message: message,
		Err:     kind,
	}
}

// IsPrecondition checks if the error is a precondition violation.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
