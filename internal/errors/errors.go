// Package apperrors defines structured error types for computil, allowing
// callers to tell mathematical failures (domain, range, division by zero,
// undefined result) apart from configuration problems, while carrying the
// operation that failed.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the tools
// shipped with the module.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel error kinds. Every MathError unwraps to exactly one of these.
var (
	// ErrDomain reports a mathematically invalid input, such as a
	// non-positive term index.
	ErrDomain = errors.New("domain error")
	// ErrOutOfRange reports an index or bound beyond the defined extent.
	ErrOutOfRange = errors.New("out of range")
	// ErrDivisionByZero reports a derived quantity that would divide by a
	// zero leading coefficient.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUndefinedResult reports an operation with no meaningful result in
	// the requested numeric domain.
	ErrUndefinedResult = errors.New("undefined result")
)

// MathError describes a failed numeric operation.
type MathError struct {
	// Op names the operation, e.g. "progression.NthTerm".
	Op string
	// Kind is one of the sentinel errors above.
	Kind error
	// Detail explains the specific failure.
	Detail string
}

// Error returns "op: kind: detail".
func (e *MathError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
}

// Unwrap returns the error kind so errors.Is(err, ErrOutOfRange) works.
func (e *MathError) Unwrap() error { return e.Kind }

// NewMathError creates a MathError with a formatted detail message.
//
// Parameters:
//   - op: The failing operation.
//   - kind: One of ErrDomain, ErrOutOfRange, ErrDivisionByZero, ErrUndefinedResult.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new *MathError.
func NewMathError(op string, kind error, format string, a ...any) error {
	return &MathError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, a...)}
}

// Domain is shorthand for NewMathError(op, ErrDomain, ...).
func Domain(op, format string, a ...any) error {
	return NewMathError(op, ErrDomain, format, a...)
}

// OutOfRange is shorthand for NewMathError(op, ErrOutOfRange, ...).
func OutOfRange(op, format string, a ...any) error {
	return NewMathError(op, ErrOutOfRange, format, a...)
}

// DivisionByZero is shorthand for NewMathError(op, ErrDivisionByZero, ...).
func DivisionByZero(op, format string, a ...any) error {
	return NewMathError(op, ErrDivisionByZero, format, a...)
}

// UndefinedResult is shorthand for NewMathError(op, ErrUndefinedResult, ...).
func UndefinedResult(op, format string, a ...any) error {
	return NewMathError(op, ErrUndefinedResult, format, a...)
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the tool cannot proceed due to incorrect input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an error due to invalid input validation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message describes why validation failed.
	Message string
	// Value is the invalid value (optional, may be nil).
	Value any
}

// Error returns the error message for a ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsMathError reports whether err wraps one of the numeric sentinel kinds.
func IsMathError(err error) bool {
	return errors.Is(err, ErrDomain) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrUndefinedResult)
}
