package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
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
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Filesystem errors
	ErrFileAccess      ErrorCode = "FILE_ACCESS"
	ErrFileWrite       ErrorCode = "FILE_WRITE"
	ErrDirCreate       ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate   ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkConflict ErrorCode = "SYMLINK_CONFLICT"

	// Adoption errors
	ErrAdoptConflict ErrorCode = "ADOPT_CONFLICT"
	ErrAdoptMove     ErrorCode = "ADOPT_MOVE"

	// Plan errors
	ErrPlanInvalid ErrorCode = "PLAN_INVALID"
)

// SublsyncError represents a structured error with code and details
type SublsyncError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SublsyncError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SublsyncError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SublsyncError carrying the same code
func (e *SublsyncError) Is(target error) bool {
	var targetErr *SublsyncError
	if crdb.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SublsyncError with the given code and message
func New(code ErrorCode, message string) *SublsyncError {
	return &SublsyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SublsyncError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SublsyncError {
	return &SublsyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SublsyncError. The wrapped cause
// records the call stack so Verbose can print it.
func Wrap(err error, code ErrorCode, message string) *SublsyncError {
	if err == nil {
		return nil
	}
	return &SublsyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: crdb.WithStackDepth(err, 1),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SublsyncError {
	if err == nil {
		return nil
	}
	return &SublsyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: crdb.WithStackDepth(err, 1),
	}
}

// WithDetail adds a detail to the error
func (e *SublsyncError) WithDetail(key string, value interface{}) *SublsyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var serr *SublsyncError
	if crdb.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SublsyncError
func GetErrorCode(err error) ErrorCode {
	var serr *SublsyncError
	if crdb.As(err, &serr) {
		return serr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SublsyncError
func GetErrorDetails(err error) map[string]interface{} {
	var serr *SublsyncError
	if crdb.As(err, &serr) {
		return serr.Details
	}
	return nil
}

// Verbose renders err together with the stack recorded by Wrap, if any.
func Verbose(err error) string {
	if err == nil {
		return ""
	}
	var serr *SublsyncError
	if crdb.As(err, &serr) && serr.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %+v", serr.Code, serr.Message, serr.Wrapped)
	}
	return fmt.Sprintf("%+v", err)
}
