// Package errors provides structured error types for skillorbit.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so the CLI (and any embedding host) can react without string
// matching:
//
//   - DUPLICATE_NAME: two skills share a display name
//   - PARSE_ERROR: a skills document is malformed or a skill is invalid
//   - INVALID_*: a user-supplied option is out of range
//   - FILE_NOT_FOUND: an input file does not exist
//   - INTERNAL_ERROR / UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateName, "duplicate skill name %q", name)
//	if errors.Is(err, errors.ErrCodeDuplicateName) {
//	    // report and keep the engine uninitialized
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, decodeErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidMode   Code = "INVALID_MODE"
	ErrCodeDuplicateName Code = "DUPLICATE_NAME"
	ErrCodeParse         Code = "PARSE_ERROR"

	// Resource errors
	ErrCodeNotFound     Code = "NOT_FOUND"
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

// DuplicateNameError reports a skill name registered twice.
// It unwraps to an *Error with [ErrCodeDuplicateName].
type DuplicateNameError struct {
	Name   string
	First  int // registration index of the first occurrence
	Second int // registration index of the duplicate
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: duplicate skill name %q (entries %d and %d)", ErrCodeDuplicateName, e.Name, e.First, e.Second)
}

// Unwrap exposes the coded form so [Is] and [GetCode] work on it.
func (e *DuplicateNameError) Unwrap() error {
	return New(ErrCodeDuplicateName, "duplicate skill name %q", e.Name)
}
