// Package derrors provides the error types shared by the lookup field.
// Every error carries a stable code so hosts can branch on the kind of failure
// without matching on message text.
package derrors

import (
	"fmt"
)

// Error codes
const (
	CodeParseFailure = "PARSE_FAILURE"
	CodeFetchFailed  = "FETCH_FAILED"
	CodeConfig       = "CONFIG_ERROR"
	CodeValidation   = "VALIDATION_ERROR"
)

// LookupError is the base interface for all lookup field errors
type LookupError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all lookup field errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ParseError reports a composite value that could not be split into a pair.
// It is treated as "no value" and never shown to the user.
type ParseError struct {
	baseError
	Value string
}

// NewParseError creates a new parse error
func NewParseError(value string, message string) *ParseError {
	return &ParseError{
		baseError: baseError{
			code:    CodeParseFailure,
			message: message,
		},
		Value: value,
	}
}

// FetchError represents a failed suggestion request: transport failure,
// non-2xx status or an undecodable body.
type FetchError struct {
	baseError
	URL        string
	StatusCode int
}

// NewFetchError creates a new fetch error. statusCode is 0 when no response
// was received.
func NewFetchError(url string, statusCode int, message string, cause error) *FetchError {
	return &FetchError{
		baseError: baseError{
			code:    CodeFetchFailed,
			message: message,
			cause:   cause,
		},
		URL:        url,
		StatusCode: statusCode,
	}
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    CodeConfig,
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents errors during validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    CodeValidation,
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}
