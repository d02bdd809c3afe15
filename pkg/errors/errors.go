// Package errors provides structured error types for wellsketch.
//
// Every failure the core can report carries a machine-readable [Code], so the
// CLI and library callers can branch on the kind of failure without string
// matching:
//
//   - DUPLICATE_NAME: a tubular name is already registered in the well
//   - INVALID_GEOMETRY: an entity would have zero or negative thickness, length or gap
//   - UNRESOLVED_BOUNDARY: a cement or packer diameter matches no casing string
//   - AMBIGUOUS_RESOLUTION: a cement or packer diameter matches several casing strings
//   - EMPTY_WELL: a layout was requested for a well without casing strings
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGeometry, "outer diameter %.3f must exceed inner diameter %.3f", od, id)
//	if errors.Is(err, errors.ErrCodeInvalidGeometry) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "tubular %d", i)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Well model errors
	ErrCodeDuplicateName       Code = "DUPLICATE_NAME"
	ErrCodeInvalidGeometry     Code = "INVALID_GEOMETRY"
	ErrCodeUnresolvedBoundary  Code = "UNRESOLVED_BOUNDARY"
	ErrCodeAmbiguousResolution Code = "AMBIGUOUS_RESOLUTION"
	ErrCodeEmptyWell           Code = "EMPTY_WELL"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidVizType Code = "INVALID_VIZ_TYPE"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// It walks the whole error chain, so a code buried under fmt.Errorf("%w")
// wrapping or under another *Error is still found.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
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
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
