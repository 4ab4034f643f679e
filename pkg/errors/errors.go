// Package errors provides structured error types for includecycle.
//
// Errors carry a machine-readable [Code] so the command line can tell a
// broken analysis root from a broken include without string matching:
//   - INVALID_*: configuration failures detected before scanning starts
//   - HEADER_NOT_FOUND: a quoted include that does not resolve on disk
//   - READ_FAILED: a source file that could not be read (non-fatal)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRoot, "directory %q does not exist", root)
//	if errors.Is(err, errors.ErrCodeInvalidRoot) {
//	    // abort before scanning
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeReadFailed, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidRoot   Code = "INVALID_ROOT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Tree integrity errors
	ErrCodeHeaderNotFound Code = "HEADER_NOT_FOUND"

	// Transient errors
	ErrCodeReadFailed Code = "READ_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or *IntegrityError
// with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the chain holds no coded error.
func GetCode(err error) Code {
	var ie *IntegrityError
	if errors.As(err, &ie) {
		return ie.Code()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IntegrityError reports a quoted include that does not resolve to a file.
// It is fatal: the analysis stops rather than build a partial graph.
type IntegrityError struct {
	IncludePath  string // Path as written in the directive
	ReferencedIn string // File containing the directive
	Resolved     string // Absolute path that was checked
	Base         string // Analysis root, or the including directory when SameDir
	SameDir      bool   // True when the include had no directory separator
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("header not found at %s (included as %q from %s)", e.Resolved, e.IncludePath, e.ReferencedIn)
}

// Code returns the error code for this error type.
func (e *IntegrityError) Code() Code {
	return ErrCodeHeaderNotFound
}
