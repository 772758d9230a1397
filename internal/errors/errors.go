package errors

import (
	"fmt"
)

// SwiftError is the structured error type for swiftfs.
// It provides rich context for error handling, logging, and user presentation.
type SwiftError struct {
	// Code is the unique error code (e.g., "ERR_302_ENGINE_EXIT").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, Filesystem, Engine, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *SwiftError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *SwiftError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with SwiftError.
func (e *SwiftError) Is(target error) bool {
	if t, ok := target.(*SwiftError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *SwiftError) WithDetail(key, value string) *SwiftError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *SwiftError) WithSuggestion(suggestion string) *SwiftError {
	e.Suggestion = suggestion
	return e
}

// New creates a new SwiftError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *SwiftError {
	return &SwiftError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a SwiftError from an existing error.
// The error's message becomes the SwiftError message.
func Wrap(code string, err error) *SwiftError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// TransportError creates an engine transport error.
func TransportError(message string, cause error) *SwiftError {
	return New(ErrCodeEngineStart, message, cause)
}

// ExitError creates an engine exit-status error carrying the exit code.
func ExitError(message string, exitCode int, cause error) *SwiftError {
	return New(ErrCodeEngineExit, message, cause).
		WithDetail("exit_code", fmt.Sprintf("%d", exitCode))
}

// ParseError creates an engine output parse error.
// Parse failures are engine-class: they trigger the same fallback as
// transport failures.
func ParseError(message string, cause error) *SwiftError {
	return New(ErrCodeMalformedOutput, message, cause)
}

// ArgumentError creates an input validation error.
func ArgumentError(message string, cause error) *SwiftError {
	return New(ErrCodeInvalidPath, message, cause)
}

// NotFoundError creates a zero-results error for single-result queries.
func NotFoundError(message string) *SwiftError {
	return New(ErrCodeNotFound, message, nil)
}

// VerifyError creates a verification discrepancy error. These surface only
// in verification mode and indicate the index answer diverged from
// filesystem truth.
func VerifyError(message string) *SwiftError {
	return New(ErrCodeVerifyMismatch, message, nil)
}

// IsEngineFailure reports whether an error should disable index usage.
// Engine-category errors (launch failure, non-zero exit, malformed output)
// qualify; validation, filesystem, and not-found errors never do.
func IsEngineFailure(err error) bool {
	if err == nil {
		return false
	}
	if se, ok := err.(*SwiftError); ok {
		return se.Category == CategoryEngine
	}
	return false
}

// IsNotFound checks if an error is a zero-results error.
func IsNotFound(err error) bool {
	if se, ok := err.(*SwiftError); ok {
		return se.Code == ErrCodeNotFound
	}
	return false
}

// GetCode extracts the error code from a SwiftError.
// Returns empty string if not a SwiftError.
func GetCode(err error) string {
	if se, ok := err.(*SwiftError); ok {
		return se.Code
	}
	return ""
}

// GetCategory extracts the category from a SwiftError.
// Returns empty string if not a SwiftError.
func GetCategory(err error) Category {
	if se, ok := err.(*SwiftError); ok {
		return se.Category
	}
	return ""
}
