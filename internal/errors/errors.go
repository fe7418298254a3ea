package apperrors

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorUsage    = 1   // Indicates a usage or parse error on the command line.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between variants.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// UsageError represents a malformed command line: a wrong argument count,
// an unknown command keyword or a misplaced flag. The caller is expected to
// print the usage text after the message.
type UsageError struct {
	// Message explains what was wrong. It may be empty when the usage text
	// alone is enough (e.g. no arguments at all).
	Message string
}

// Error returns the error message for a UsageError.
func (e UsageError) Error() string {
	if e.Message == "" {
		return "usage error"
	}
	return e.Message
}

// NewUsageError creates a new UsageError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new UsageError instance containing the formatted message.
func NewUsageError(format string, a ...any) error {
	return UsageError{Message: fmt.Sprintf(format, a...)}
}

// ParseError reports a numeric argument that is not a valid unsigned 64-bit
// integer.
type ParseError struct {
	// Token is the offending command-line argument, verbatim.
	Token string
	// Cause is the underlying strconv error, if any.
	Cause error
}

// Error returns a message naming the offending token.
func (e ParseError) Error() string {
	return fmt.Sprintf("'%s' is not a valid number", e.Token)
}

// Unwrap returns the underlying strconv error.
func (e ParseError) Unwrap() error { return e.Cause }

// CalculationError encapsulates a calculation error while preserving the
// original cause, together with the name of the calculator that failed.
type CalculationError struct {
	// Calculator is the name of the operation that failed.
	Calculator string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause, prefixed with
// the calculator name when known.
func (e CalculationError) Error() string {
	if e.Calculator == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Calculator, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap lets errors.Is match context.DeadlineExceeded.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// MismatchError reports that two variants of the same operation disagreed.
type MismatchError struct {
	N       uint64
	Results map[string]uint64
}

// Error returns a formatted message listing the disagreeing results.
func (e MismatchError) Error() string {
	return fmt.Sprintf("variants disagree for n=%d: %v", e.N, e.Results)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsHelpError reports whether err signals that --help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	var (
		usageErr    UsageError
		parseErr    ParseError
		timeoutErr  TimeoutError
		mismatchErr MismatchError
	)
	switch {
	case err == nil, IsHelpError(err):
		return ExitSuccess
	case errors.As(err, &usageErr), errors.As(err, &parseErr):
		return ExitErrorUsage
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
