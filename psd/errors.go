// ABOUTME: Error types and handling for the discovery library
// ABOUTME: Classifies engine failures so callers can branch without importing core packages

package psd

import (
	stderrors "errors"
	"fmt"

	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a rejected argument, before any I/O
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNetwork indicates a transport failure or cancellation
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeHTTP indicates a non-2xx response
	ErrorTypeHTTP ErrorType = "http"

	// ErrorTypeParsing indicates a malformed discovery document
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeDepth indicates link recursion went too deep
	ErrorTypeDepth ErrorType = "depth"

	// ErrorTypeConfiguration indicates an invalid client setup
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// classify maps an engine error onto an ErrorType. Anything unrecognized
// came from the transport, cancellation included.
func classify(err error) ErrorType {
	switch {
	case coreerrors.IsValidation(err):
		return ErrorTypeValidation
	case coreerrors.IsMalformedDocument(err):
		return ErrorTypeParsing
	case coreerrors.IsMaxDepthExceeded(err):
		return ErrorTypeDepth
	case coreerrors.IsExternalAPI(err):
		return ErrorTypeHTTP
	default:
		return ErrorTypeNetwork
	}
}

func wrapDiscoveryError(err error, url string) *Error {
	return NewError(classify(err), "discovery failed").
		WithCause(err).
		WithContext("url", url)
}

func typeOf(err error) (ErrorType, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type, true
	}
	return "", false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrorTypeValidation
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrorTypeNetwork
}

// IsHTTPError checks if an error is a non-2xx response error
func IsHTTPError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrorTypeHTTP
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrorTypeParsing
}

// IsDepthError checks if discovery stopped at the depth limit
func IsDepthError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrorTypeDepth
}
