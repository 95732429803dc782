package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure class so tests can match on it without
// comparing messages.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Fixture errors
	ErrInvalidPath ErrorCode = "INVALID_PATH"
	ErrExecutable  ErrorCode = "EXECUTABLE"
	ErrManifest    ErrorCode = "MANIFEST"

	// FileSystem errors
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrDirRemove ErrorCode = "DIR_REMOVE"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// Error is a structured error carrying a code, details and the wrapped cause
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches another *Error with the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return codedErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return codedErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var codedErr *Error
	if errors.As(err, &codedErr) {
		return codedErr.Details
	}
	return nil
}
