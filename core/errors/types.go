// ABOUTME: Custom error types for the discovery engine
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ErrMaxDepthExceeded is returned when link recursion goes deeper than allowed
var ErrMaxDepthExceeded = errors.New("maximum discovery depth exceeded")

// ErrCacheMiss is returned by cache implementations when a key is absent
var ErrCacheMiss = errors.New("cache miss")

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// MalformedDocumentError reports a discovery document that could not be read.
// Format names the document kind, such as "rsd" or "nfd".
type MalformedDocumentError struct {
	Format string
	URI    string
	Err    error
}

// Error implements the error interface
func (e *MalformedDocumentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed %s document at %s", e.Format, e.URI)
	}
	return fmt.Sprintf("malformed %s document at %s: %v", e.Format, e.URI, e.Err)
}

// Unwrap returns the underlying parse error
func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// NewMalformed builds a MalformedDocumentError with a formatted cause
func NewMalformed(format, uri, msg string, args ...interface{}) *MalformedDocumentError {
	return &MalformedDocumentError{
		Format: format,
		URI:    uri,
		Err:    fmt.Errorf(msg, args...),
	}
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidArgument reports whether err rejected a caller-supplied argument
// before any I/O happened.
func IsInvalidArgument(err error) bool {
	return IsValidation(err)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsMalformedDocument checks if an error is a MalformedDocumentError
func IsMalformedDocument(err error) bool {
	var malformedErr *MalformedDocumentError
	return errors.As(err, &malformedErr)
}

// IsMaxDepthExceeded checks if an error is ErrMaxDepthExceeded
func IsMaxDepthExceeded(err error) bool {
	return errors.Is(err, ErrMaxDepthExceeded)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
