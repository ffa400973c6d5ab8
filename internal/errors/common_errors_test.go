package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{"usage error type", ErrTypeUsage, "USAGE"},
		{"format error type", ErrTypeFormat, "FORMAT"},
		{"lookup error type", ErrTypeLookup, "LOOKUP"},
		{"response error type", ErrTypeResponse, "RESPONSE"},
		{"consistency error type", ErrTypeConsistency, "CONSISTENCY"},
		{"io error type", ErrTypeIO, "IO"},
		{"config error type", ErrTypeConfig, "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeFormat,
				Message: "expected keyword access not found in header",
			},
			wantMessage: "[FORMAT] expected keyword access not found in header",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeIO,
				Message: "open survey",
				Cause:   fmt.Errorf("no such file"),
			},
			wantMessage: "[IO] open survey: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	appErr := NewIOError("write export", cause)

	assert.Equal(t, cause, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, cause))

	wrapped := fmt.Errorf("save: %w", appErr)
	var target *AppError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, ErrTypeIO, target.Type)
}

func TestAppError_WithContext(t *testing.T) {
	appErr := &AppError{Type: ErrTypeResponse, Message: "unrecognized response"}

	result := appErr.WithContext("column", 12).WithContext("value", "Maybe")

	assert.Same(t, appErr, result)
	assert.Equal(t, 12, appErr.Context["column"])
	assert.Equal(t, "Maybe", appErr.Context["value"])
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantMsg  string
		hasCause bool
	}{
		{"usage", NewUsageError("bad args"), ErrTypeUsage, "bad args", false},
		{"format", NewFormatError("bad header"), ErrTypeFormat, "bad header", false},
		{"lookup", NewLookupError("PROG not found"), ErrTypeLookup, "PROG not found", false},
		{"response", NewResponseError("Maybe"), ErrTypeResponse, "Maybe", false},
		{"consistency", NewConsistencyError("length"), ErrTypeConsistency, "length", false},
		{"io", NewIOError("read", cause), ErrTypeIO, "read", true},
		{"config", NewConfigError("parse", cause), ErrTypeConfig, "parse", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.NotNil(t, tt.err.Context)
			if tt.hasCause {
				assert.Equal(t, cause, tt.err.Cause)
			} else {
				assert.Nil(t, tt.err.Cause)
			}
		})
	}
}
