package model

import "fmt"

// ErrorKind classifies the failure of a single batch item.
// There are exactly two kinds: the input string could not be decoded
// into 16 bytes, or the decoded millisecond count has no representable
// calendar instant within the supported date range.
type ErrorKind string

const (
	// KindInvalidUUID indicates the input string is not a syntactically
	// valid UUID representation.
	KindInvalidUUID ErrorKind = "invalid-uuid"

	// KindTimestampOutOfRange indicates the decoded 48-bit millisecond
	// count falls outside the supported calendar range.
	KindTimestampOutOfRange ErrorKind = "timestamp-out-of-range"
)

// String returns the string representation of the ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// ItemError describes the failure of one batch item. It names the
// offending input and the failure kind so that diagnostics can
// distinguish invalid syntax from out-of-range timestamps.
//
// ItemErrors never abort the batch — they are reported per item and
// folded into the aggregate exit status.
type ItemError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Input is the candidate string that failed.
	Input string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface with a human-readable message
// naming the offending input and the failure kind.
func (e *ItemError) Error() string {
	switch e.Kind {
	case KindTimestampOutOfRange:
		if e.Err != nil {
			return fmt.Sprintf("timestamp out of range in %q: %v", e.Input, e.Err)
		}
		return fmt.Sprintf("timestamp out of range in %q", e.Input)
	default:
		if e.Err != nil {
			return fmt.Sprintf("invalid UUID %q: %v", e.Input, e.Err)
		}
		return fmt.Sprintf("invalid UUID %q", e.Input)
	}
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItemError creates an ItemError of the given kind for the given input.
func NewItemError(kind ErrorKind, input string, err error) *ItemError {
	return &ItemError{Kind: kind, Input: input, Err: err}
}

// ExitCode defines the CLI exit codes. The contract is deliberately
// narrow: success, or at least one item failed.
type ExitCode int

const (
	// ExitSuccess indicates every candidate was decoded and rendered.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates at least one candidate failed, no
	// usable input was supplied, or a flag/usage error occurred.
	ExitGeneralError ExitCode = 1
)

// CLIError is an error type that carries an exit code, allowing the CLI
// layer to translate process-level failures into OS exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError wrapping an underlying error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
