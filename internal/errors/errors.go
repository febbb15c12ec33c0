// Package errors defines the stable error code system for seedsearch.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract; scripts match on these.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Transcript decoding
	ETranscriptStructure Code = "E_TRANSCRIPT_STRUCTURE" // required marker or bracket structure missing
	ETranscriptEncoding  Code = "E_TRANSCRIPT_ENCODING"  // captured stdout is not valid UTF-8

	// Launch
	ELaunchFailed Code = "E_LAUNCH_FAILED" // java could not start, timed out, or exited non-zero

	// Installation discovery
	EInvalidHome        Code = "E_INVALID_HOME"
	EInvalidJava        Code = "E_INVALID_JAVA"
	EInvalidModTheSpire Code = "E_INVALID_MOD_THE_SPIRE"

	// Configuration
	ENoSearchConfig      Code = "E_NO_SEARCH_CONFIG"
	EInvalidSearchConfig Code = "E_INVALID_SEARCH_CONFIG"
	EInvalidUserConfig   Code = "E_INVALID_USER_CONFIG"

	// I/O
	EReadFailed  Code = "E_READ_FAILED"
	EWriteFailed Code = "E_WRITE_FAILED"
)

// SearchError is the standard error type for seedsearch errors.
type SearchError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *SearchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *SearchError) Unwrap() error {
	return e.Cause
}

// ExitCodeError wraps an error with an explicit process exit code.
type ExitCodeError struct {
	Err  error
	Code int
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

func (e *ExitCodeError) ExitCode() int {
	return e.Code
}

// WithExitCode wraps err with a specific process exit code.
func WithExitCode(err error, code int) error {
	return &ExitCodeError{Err: err, Code: code}
}

// New creates a new SearchError with the given code and message.
func New(code Code, msg string) error {
	return &SearchError{Code: code, Msg: msg}
}

// NewWithDetails creates a new SearchError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &SearchError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new SearchError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &SearchError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new SearchError wrapping an underlying error with details.
// Details map is copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &SearchError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// WithDetail returns a copy of err with key set in its details.
// Errors that are not SearchErrors are returned unchanged.
func WithDetail(err error, key, value string) error {
	se, ok := AsSearchError(err)
	if !ok {
		return err
	}
	details := copyDetails(se.Details)
	if details == nil {
		details = make(map[string]string, 1)
	}
	details[key] = value
	return &SearchError{Code: se.Code, Msg: se.Msg, Cause: se.Cause, Details: details}
}

// GetCode extracts the error code from an error, or empty string if not a SearchError.
func GetCode(err error) Code {
	var se *SearchError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// AsSearchError returns (*SearchError, true) if err is or wraps a SearchError.
func AsSearchError(err error) (*SearchError, bool) {
	var se *SearchError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ec, ok := err.(interface{ ExitCode() int }); ok {
		return ec.ExitCode()
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var se *SearchError
	if errors.As(err, &se) {
		_, _ = fmt.Fprintf(w, "error_code: %s\n", se.Code)
		_, _ = fmt.Fprintln(w, se.Msg)
	} else {
		_, _ = fmt.Fprintln(w, err.Error())
	}
}
