package errors

import (
	stderrors "errors"
	"fmt"
)

// CallError is the uniform error returned by REST calls and configuration loads.
type CallError struct {
	// Code names the stage that failed.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message, usually the cause's message.
	Message string `json:"message"`
	// Retryable indicates if repeating the call may succeed.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *CallError) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *CallError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *CallError) WithCause(cause error) *CallError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *CallError) WithDetails(details map[string]any) *CallError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *CallError) WithDetail(key string, value any) *CallError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new CallError with automatic retryable detection.
func New(code ErrorCode, message string) *CallError {
	return &CallError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// Wrap turns any error into a CallError carrying the cause's message.
// A cause that already is a CallError is returned unchanged, so wrapping at
// several layers never nests CallErrors. Wrap(code, nil) returns nil.
func Wrap(code ErrorCode, cause error) *CallError {
	if cause == nil {
		return nil
	}
	if ce, ok := AsCallError(cause); ok {
		return ce
	}
	return New(code, cause.Error()).WithCause(cause)
}

// ConfigLoad creates a CallError for a configuration source that failed to load.
func ConfigLoad(cause error) *CallError {
	return Wrap(ErrCodeConfigLoad, cause)
}

// InvalidConfig creates a CallError for a configuration that cannot drive a call.
func InvalidConfig(message string) *CallError {
	return New(ErrCodeInvalidConfig, message)
}

// AsCallError extracts a CallError from err's chain.
func AsCallError(err error) (*CallError, bool) {
	var ce *CallError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// HasCode reports whether err is a CallError with the given code.
func HasCode(err error, code ErrorCode) bool {
	ce, ok := AsCallError(err)
	return ok && ce.Code == code
}

// IsConfigLoad checks if an error is a configuration load error.
func IsConfigLoad(err error) bool { return HasCode(err, ErrCodeConfigLoad) }

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool { return HasCode(err, ErrCodeConnection) }

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool { return HasCode(err, ErrCodeTimeout) }

// IsHTTPStatus checks if an error is a non-2xx response error.
func IsHTTPStatus(err error) bool { return HasCode(err, ErrCodeHTTPStatus) }

// IsDecode checks if an error is a response decoding error.
func IsDecode(err error) bool { return HasCode(err, ErrCodeDecode) }

// IsRetryable checks if an error is marked retryable.
func IsRetryable(err error) bool {
	ce, ok := AsCallError(err)
	return ok && ce.Retryable
}
