// Package cybertoken generates and parses self-describing bearer tokens.
package cybertoken

import (
	"errors"
	"fmt"
)

// ParseError is returned by Config.Parse when the input is not shaped like a
// token of this format. A checksum mismatch is not a ParseError; it is
// reported through Contents.IsSyntacticallyValid.
type ParseError struct {
	Code    string // Error code (e.g., "CT-PARSE-4003")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ParseError with the same code.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetails returns a copy of the error with additional details.
func (e *ParseError) WithDetails(details string) *ParseError {
	return &ParseError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *ParseError) WithCause(cause error) *ParseError {
	return &ParseError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

var (
	// ErrMissingDelimiter indicates the input has no underscore separating
	// prefix and body.
	ErrMissingDelimiter = &ParseError{Code: "CT-PARSE-4001", Message: "missing underscore"}

	// ErrBase62Decoding indicates the body contains symbols outside the
	// Base62 alphabet.
	ErrBase62Decoding = &ParseError{Code: "CT-PARSE-4002", Message: "found invalid base62 data"}

	// ErrTokenLength indicates the decoded body is too short to hold a
	// secret, the marker byte and the checksum.
	ErrTokenLength = &ParseError{Code: "CT-PARSE-4003", Message: "invalid token length"}

	// ErrVersionMismatch indicates the marker byte differs from the
	// configured version.
	ErrVersionMismatch = &ParseError{Code: "CT-PARSE-4004", Message: "token version mismatch"}
)

// IsParseError checks if an error is a ParseError with the given code.
// If code is empty, it only checks if the error is a ParseError.
func IsParseError(err error, code string) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		if code == "" {
			return true
		}
		return pe.Code == code
	}
	return false
}

// ErrorCode extracts the error code from an error if it's a ParseError.
func ErrorCode(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}
