package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// App errors
	ErrAppNotFound ErrorCode = "APP_NOT_FOUND"

	// Patch errors
	ErrPatchLoad ErrorCode = "PATCH_LOAD"
)

// PatchupError represents a structured error with code and details
type PatchupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PatchupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PatchupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PatchupError) Is(target error) bool {
	var targetErr *PatchupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PatchupError with the given code and message
func New(code ErrorCode, message string) *PatchupError {
	return &PatchupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PatchupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PatchupError {
	return &PatchupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PatchupError
func Wrap(err error, code ErrorCode, message string) *PatchupError {
	if err == nil {
		return nil
	}
	return &PatchupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PatchupError {
	if err == nil {
		return nil
	}
	return &PatchupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PatchupError) WithDetail(key string, value interface{}) *PatchupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PatchupError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PatchupError
func GetErrorCode(err error) ErrorCode {
	var perr *PatchupError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PatchupError
func GetErrorDetails(err error) map[string]interface{} {
	var perr *PatchupError
	if errors.As(err, &perr) {
		return perr.Details
	}
	return nil
}
