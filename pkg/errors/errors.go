// Package errors provides structured error types for the relwatch engine.
//
// This package defines error codes and types that enable:
//   - Result-style error handling: every failed resolution is a returned
//     value carrying a machine-readable code, never a panic
//   - Consistent handling across the library API and the CLI
//   - User-friendly messages separate from the code
//
// # Error Codes
//
// Codes mirror the resolution outcome taxonomy:
//   - NO_DEV_RELEASE, VERSION_NOT_FOUND, NO_STABLE_RELEASE: selection
//     outcomes, fatal or degradable depending on the configured strategy
//   - PROJECT_UNPUBLISHED, FEED_ERROR, PROJECT_NOT_FOUND: feed-level
//     failures surfaced before any catalog exists
//   - UNKNOWN_STRATEGY, INVALID_*: input validation failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeVersionNotFound, "version %s not found", v)
//	if errors.Is(err, errors.ErrCodeVersionNotFound) {
//	    // Handle the missing version
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different failure categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidProject  Code = "INVALID_PROJECT"
	ErrCodeUnknownStrategy Code = "UNKNOWN_STRATEGY"

	// Selection outcomes
	ErrCodeNoDevRelease    Code = "NO_DEV_RELEASE"
	ErrCodeVersionNotFound Code = "VERSION_NOT_FOUND"
	ErrCodeNoStableRelease Code = "NO_STABLE_RELEASE"

	// Feed-level failures (no catalog available)
	ErrCodeProjectUnpublished Code = "PROJECT_UNPUBLISHED"
	ErrCodeFeedError          Code = "FEED_ERROR"
	ErrCodeProjectNotFound    Code = "PROJECT_NOT_FOUND"

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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
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
		return e.Message
	}
	return err.Error()
}
