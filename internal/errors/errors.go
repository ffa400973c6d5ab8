package errors

import (
	stderrors "errors"
)

// Process exit codes used by the command line tools
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// exitCodes maps error types to process exit codes. Anything not listed
// exits with ExitError.
var exitCodes = map[ErrorType]int{
	ErrTypeUsage: ExitUsage,
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		if code, ok := exitCodes[appErr.Type]; ok {
			return code
		}
	}
	return ExitError
}

// IsType reports whether err, or any error it wraps, is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	for err != nil {
		if !stderrors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errType {
			return true
		}
		err = appErr.Cause
	}
	return false
}

// TypeOf returns the type of the outermost AppError in err's chain, or "" if none
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}
