package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Common sentinel errors for quick checks
var (
	// ErrInvalidInput is returned when caller input is invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLinkOpen is returned when a link destination could not be opened.
	ErrLinkOpen = errors.New("could not open link")

	// ErrInternal is returned when an internal error occurs.
	ErrInternal = errors.New("internal error")
)

// Error is the base interface for all custom errors in the system.
// It extends the standard error interface with additional context.
type Error interface {
	error
	// Code returns the error code
	Code() string
	// Message returns the human-readable error message
	Message() string
	// Unwrap returns the underlying cause
	Unwrap() error
}

// BaseError provides a foundation for all typed errors.
type BaseError struct {
	code    string
	message string
	cause   error
	stack   []uintptr
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the error code.
func (e *BaseError) Code() string {
	return e.code
}

// Message returns the error message.
func (e *BaseError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Stack returns the captured stack trace.
func (e *BaseError) Stack() []uintptr {
	return e.stack
}

// captureStack captures the current stack trace.
func captureStack(skip int) []uintptr {
	const maxDepth = 32
	stack := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, stack)
	return stack[:n]
}

// StackTrace returns a formatted stack trace string.
func (e *BaseError) StackTrace() string {
	if len(e.stack) == 0 {
		return ""
	}

	var buf strings.Builder
	frames := runtime.CallersFrames(e.stack)
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			fmt.Fprintf(&buf, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return buf.String()
}

// ValidationError represents an input validation error.
type ValidationError struct {
	*BaseError
	Field string
	Value interface{}
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		BaseError: &BaseError{
			code:    CodeValidation,
			message: message,
			stack:   captureStack(1),
		},
		Field: field,
		Value: value,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.message)
	}
	return fmt.Sprintf("validation error: %s", e.message)
}

// LinkOpenError represents a failure to open a link destination.
type LinkOpenError struct {
	*BaseError
	URL string
}

// NewLinkOpenError creates a new link open error.
func NewLinkOpenError(url string, cause error) *LinkOpenError {
	return &LinkOpenError{
		BaseError: &BaseError{
			code:    CodeLinkOpen,
			message: "could not open link",
			cause:   cause,
			stack:   captureStack(1),
		},
		URL: url,
	}
}

// Error implements the error interface.
func (e *LinkOpenError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("could not open link %s: %v", e.URL, e.cause)
	}
	return fmt.Sprintf("could not open link %s", e.URL)
}

// ConfigError represents a configuration loading or validation error.
type ConfigError struct {
	*BaseError
	Path string
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *ConfigError {
	if message == "" {
		message = "configuration error"
	}
	return &ConfigError{
		BaseError: &BaseError{
			code:    CodeConfig,
			message: message,
			cause:   cause,
			stack:   captureStack(1),
		},
	}
}

// WithPath sets the config file path the error originated from.
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.Path = path
	return e
}

// InternalError represents an unexpected internal error.
type InternalError struct {
	*BaseError
	Operation string
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *InternalError {
	if message == "" {
		message = "internal error"
	}
	return &InternalError{
		BaseError: &BaseError{
			code:    CodeInternal,
			message: message,
			cause:   cause,
			stack:   captureStack(1),
		},
	}
}

// WithOperation sets the operation context.
func (e *InternalError) WithOperation(op string) *InternalError {
	e.Operation = op
	return e
}
