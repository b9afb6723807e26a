// Package errors provides centralized error definitions and error handling
// utilities for the task tracker. It defines sentinel errors for the three
// failure kinds the core can report, semantic error types that carry context,
// and classification helpers used at the command boundary.
//
// # Error Kinds
//
//   - ErrInvalidInput: input validation failed (empty description,
//     unrecognized status)
//   - ErrTaskNotFound: an operation referenced a nonexistent task id
//   - ErrCorruptData: the persisted document exists but cannot be parsed or
//     validated
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewValidationError("description must not be empty").WithField("description")
//	err := errors.NewNotFoundError("task", 42)
//	err := errors.NewCorruptDataError("tasks.json", cause)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrTaskNotFound) { ... }
//
//	var notFound *errors.NotFoundError
//	if errors.As(err, &notFound) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityWarning is for errors caused by user input; the invocation
	// fails but nothing is wrong with the tracker itself.
	SeverityWarning Severity = iota
	// SeverityError is for errors that indicate a real problem, such as a
	// store file that can no longer be read.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Sentinel errors for the three failure kinds of the core.
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrTaskNotFound indicates that a task could not be found.
	ErrTaskNotFound = New("task not found")
	// ErrCorruptData indicates that the persisted document exists but
	// cannot be parsed into the expected structure.
	ErrCorruptData = New("corrupt task data")
)

// TrackerError is the base interface for all tracker errors. It extends the
// standard error interface with classification methods.
type TrackerError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// ValidationError represents invalid input.
//
// Example:
//
//	err := errors.NewValidationError("description must not be empty")
//	err = err.WithField("description").WithValue("")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "invalid input"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("invalid input [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// NotFoundError represents a task (or other resource) that could not be
// found.
//
// Example:
//
//	err := errors.NewNotFoundError("task", 42)
//	fmt.Println(err) // "task 42 not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   int
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType string, resourceID int) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s %d not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %d not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s %d not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if errors.Is(target, ErrTaskNotFound) {
		return true
	}
	return e.baseError.Is(target)
}

// CorruptDataError represents a persisted document that exists but fails to
// parse or validate against the expected schema.
//
// Example:
//
//	err := errors.NewCorruptDataError("tasks.json", parseErr)
type CorruptDataError struct {
	baseError
	Path string
}

// NewCorruptDataError creates a new CorruptDataError.
func NewCorruptDataError(path string, cause error) *CorruptDataError {
	return &CorruptDataError{
		baseError: baseError{
			message:    "task data is corrupt",
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
		Path: path,
	}
}

// Error returns the formatted error message.
func (e *CorruptDataError) Error() string {
	prefix := "corrupt task data"
	if e.Path != "" {
		prefix = fmt.Sprintf("corrupt task data [path=%s]", e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return prefix
}

// Is checks if this error matches the target.
func (e *CorruptDataError) Is(target error) bool {
	if _, ok := target.(*CorruptDataError); ok {
		return true
	}
	if errors.Is(target, ErrCorruptData) {
		return true
	}
	return e.baseError.Is(target)
}

// IsUserFacing returns true if the error message is safe to display to end
// users. Semantic errors are always user-facing; wrapped system errors are
// not.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var trackerErr TrackerError
	if As(err, &trackerErr) {
		return trackerErr.IsUserFacing()
	}

	return false
}

// GetSeverity returns the severity level of the error. Returns SeverityError
// for errors that don't implement TrackerError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityWarning
	}

	var trackerErr TrackerError
	if As(err, &trackerErr) {
		return trackerErr.Severity()
	}

	return SeverityError
}

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to load tasks")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
