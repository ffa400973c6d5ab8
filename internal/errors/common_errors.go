package errors

import (
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeUsage       ErrorType = "USAGE"
	ErrTypeFormat      ErrorType = "FORMAT"
	ErrTypeLookup      ErrorType = "LOOKUP"
	ErrTypeResponse    ErrorType = "RESPONSE"
	ErrTypeConsistency ErrorType = "CONSISTENCY"
	ErrTypeIO          ErrorType = "IO"
	ErrTypeConfig      ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper functions for common error types

// NewUsageError creates a command line usage error
func NewUsageError(message string) *AppError {
	return NewAppError(ErrTypeUsage, message, nil)
}

// NewFormatError reports a survey layout that does not match the expected schema
func NewFormatError(message string) *AppError {
	return NewAppError(ErrTypeFormat, message, nil)
}

// NewLookupError reports a catalogue entry with no matching survey column
func NewLookupError(message string) *AppError {
	return NewAppError(ErrTypeLookup, message, nil)
}

// NewResponseError reports a cell value outside the coding table
func NewResponseError(message string) *AppError {
	return NewAppError(ErrTypeResponse, message, nil)
}

// NewConsistencyError reports misaligned response counts
func NewConsistencyError(message string) *AppError {
	return NewAppError(ErrTypeConsistency, message, nil)
}

// NewIOError creates a file access error
func NewIOError(message string, cause error) *AppError {
	return NewAppError(ErrTypeIO, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
