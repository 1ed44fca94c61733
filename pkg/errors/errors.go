// Package errors provides structured error types for the GraphQL-Converter application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the conversion pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (malformed introspection data, bad options)
//   - *_FAILED: Stage failures (emission, rendering, verification)
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownKind, "type %s: unknown kind %q", name, kind)
//	if errors.Is(err, errors.ErrCodeUnknownKind) {
//	    // Handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "failed to render %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Malformed introspection input
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeUnknownKind    Code = "UNKNOWN_KIND"
	ErrCodeDuplicateType  Code = "DUPLICATE_TYPE"
	ErrCodeInvalidWrapper Code = "INVALID_WRAPPER"

	// Model consistency
	ErrCodeDanglingReference Code = "DANGLING_REFERENCE"

	// Artifact production
	ErrCodeEmissionFailed Code = "EMISSION_FAILED"
	ErrCodeRenderFailed   Code = "RENDER_FAILED"
	ErrCodeConvertFailed  Code = "CONVERT_FAILED"
	ErrCodeWriteFailed    Code = "WRITE_FAILED"
	ErrCodeVerifyFailed   Code = "VERIFY_FAILED"

	// Caller-supplied options
	ErrCodeInvalidOptions Code = "INVALID_OPTIONS"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

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

// IsMalformedInput reports whether err is any of the malformed-input codes.
// The conversion pipeline treats these uniformly: fatal, no partial output.
func IsMalformedInput(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeUnknownKind, ErrCodeDuplicateType, ErrCodeInvalidWrapper:
		return true
	}
	return false
}
