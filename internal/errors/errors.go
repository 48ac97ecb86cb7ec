package errors

import (
	"errors"
	"fmt"
)

// Exit codes for forage-sshd
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitProbeFailed   = 2
	ExitHandoffFailed = 3
	ExitConfigError   = 4
)

// LauncherError is the base error type for forage-sshd
type LauncherError struct {
	Code    int
	Message string
	Cause   error
}

func (e *LauncherError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LauncherError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *LauncherError) ExitCode() int {
	return e.Code
}

// New creates a new LauncherError
func New(code int, message string) *LauncherError {
	return &LauncherError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a LauncherError
func Wrap(code int, message string, cause error) *LauncherError {
	return &LauncherError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ProbeFailed returns an error for a failed listening-socket query
func ProbeFailed(port int, cause error) *LauncherError {
	return Wrap(ExitProbeFailed, fmt.Sprintf("failed to query listeners on port %d", port), cause)
}

// HandoffFailed returns an error when the target binary cannot be exec'd
func HandoffFailed(binary string, cause error) *LauncherError {
	return Wrap(ExitHandoffFailed, fmt.Sprintf("failed to exec %s", binary), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *LauncherError {
	return Wrap(ExitConfigError, message, cause)
}

// PortInUse reports an occupied port to the read-only probe command
func PortInUse(port int) *LauncherError {
	return New(ExitGeneralError, fmt.Sprintf("port %d is in use", port))
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var launcherErr *LauncherError
	if errors.As(err, &launcherErr) {
		return launcherErr.ExitCode()
	}
	return ExitGeneralError
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
