package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrAborted      ErrorCode = "ABORTED"

	// Rule and resolution errors
	ErrInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	ErrUnknownRule       ErrorCode = "UNKNOWN_RULE"
	ErrCycleDetected     ErrorCode = "CYCLE_DETECTED"
	ErrIndexOutOfRange   ErrorCode = "INDEX_OUT_OF_RANGE"

	// Configuration errors
	ErrConfigNotFound    ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigParse       ErrorCode = "CONFIG_PARSE"
	ErrConfigValidation  ErrorCode = "CONFIG_VALIDATION"
	ErrUnknownPkgManager ErrorCode = "UNKNOWN_PKG_MANAGER"

	// Action errors
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
)

// DotmError represents a structured error with code and details
type DotmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotmError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotmError) Is(target error) bool {
	var targetErr *DotmError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotmError with the given code and message
func New(code ErrorCode, message string) *DotmError {
	return &DotmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotmError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotmError {
	return &DotmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotmError
func Wrap(err error, code ErrorCode, message string) *DotmError {
	if err == nil {
		return nil
	}
	return &DotmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotmError {
	if err == nil {
		return nil
	}
	return &DotmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotmError) WithDetail(key string, value interface{}) *DotmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var dotmErr *DotmError
		if !errors.As(err, &dotmErr) {
			return false
		}
		if dotmErr.Code == code {
			return true
		}
		err = dotmErr.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown if not a DotmError
func GetErrorCode(err error) ErrorCode {
	var dotmErr *DotmError
	if errors.As(err, &dotmErr) {
		return dotmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotmError
func GetErrorDetails(err error) map[string]interface{} {
	var dotmErr *DotmError
	if errors.As(err, &dotmErr) {
		return dotmErr.Details
	}
	return nil
}

// Message renders the error chain for end users: the messages joined by
// ": " without the bracketed codes.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var parts []string
	for err != nil {
		var dotmErr *DotmError
		if !errors.As(err, &dotmErr) {
			parts = append(parts, err.Error())
			break
		}
		if dotmErr.Message != "" {
			parts = append(parts, dotmErr.Message)
		}
		err = dotmErr.Wrapped
	}
	return strings.Join(parts, ": ")
}
