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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Usage errors: bad command line, reported without a stack of context
	ErrUsage            ErrorCode = "USAGE"
	ErrUnknownCommand   ErrorCode = "UNKNOWN_COMMAND"
	ErrUnknownFlag      ErrorCode = "UNKNOWN_FLAG"
	ErrBadArgument      ErrorCode = "BAD_ARGUMENT"
	ErrUnsupportedShell ErrorCode = "UNSUPPORTED_SHELL"

	// Rendering errors
	ErrRenderCrash ErrorCode = "RENDER_CRASH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// usageCodes are the codes a user can fix by changing the command line
var usageCodes = map[ErrorCode]bool{
	ErrUsage:            true,
	ErrUnknownCommand:   true,
	ErrUnknownFlag:      true,
	ErrBadArgument:      true,
	ErrUnsupportedShell: true,
}

// GdotError represents a structured error with code and details
type GdotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GdotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GdotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GdotError) Is(target error) bool {
	var targetErr *GdotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GdotError with the given code and message
func New(code ErrorCode, message string) *GdotError {
	return &GdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GdotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GdotError {
	return &GdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GdotError
func Wrap(err error, code ErrorCode, message string) *GdotError {
	if err == nil {
		return nil
	}
	return &GdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GdotError {
	if err == nil {
		return nil
	}
	return &GdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GdotError) WithDetail(key string, value interface{}) *GdotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gdotErr *GdotError
	if errors.As(err, &gdotErr) {
		return gdotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GdotError
func GetErrorCode(err error) ErrorCode {
	var gdotErr *GdotError
	if errors.As(err, &gdotErr) {
		return gdotErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GdotError
func GetErrorDetails(err error) map[string]interface{} {
	var gdotErr *GdotError
	if errors.As(err, &gdotErr) {
		return gdotErr.Details
	}
	return nil
}

// IsUsage reports whether err was caused by a malformed command line
func IsUsage(err error) bool {
	return usageCodes[GetErrorCode(err)]
}

// Message returns the text meant for the user: the message of the outermost
// GdotError (and its cause, if any) without the code prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var gdotErr *GdotError
	if !errors.As(err, &gdotErr) {
		return err.Error()
	}
	if gdotErr.Wrapped != nil && !IsUsage(gdotErr) {
		return fmt.Sprintf("%s: %s", gdotErr.Message, Message(gdotErr.Wrapped))
	}
	return gdotErr.Message
}
