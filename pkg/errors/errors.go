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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Tree errors
	ErrInvalidTree ErrorCode = "INVALID_TREE"

	// Operator errors
	ErrPollFailed ErrorCode = "POLL_FAILED"
	ErrCancelled  ErrorCode = "OPERATOR_CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Document errors
	ErrDocumentLoad ErrorCode = "DOCUMENT_LOAD"
	ErrDocumentSave ErrorCode = "DOCUMENT_SAVE"
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
)

// OutlinerError represents a structured error with code and details
type OutlinerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OutlinerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OutlinerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OutlinerError) Is(target error) bool {
	var targetErr *OutlinerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OutlinerError with the given code and message
func New(code ErrorCode, message string) *OutlinerError {
	return &OutlinerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OutlinerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OutlinerError {
	return &OutlinerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OutlinerError.
// Callers must check err themselves: a nil *OutlinerError stored in an
// error interface is not a nil error.
func Wrap(err error, code ErrorCode, message string) *OutlinerError {
	if err == nil {
		return nil
	}
	return &OutlinerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OutlinerError {
	if err == nil {
		return nil
	}
	return &OutlinerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OutlinerError) WithDetail(key string, value interface{}) *OutlinerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *OutlinerError) WithDetails(details map[string]interface{}) *OutlinerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var outlinerErr *OutlinerError
	if errors.As(err, &outlinerErr) {
		return outlinerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OutlinerError
func GetErrorCode(err error) ErrorCode {
	var outlinerErr *OutlinerError
	if errors.As(err, &outlinerErr) {
		return outlinerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OutlinerError
func GetErrorDetails(err error) map[string]interface{} {
	var outlinerErr *OutlinerError
	if errors.As(err, &outlinerErr) {
		return outlinerErr.Details
	}
	return nil
}
