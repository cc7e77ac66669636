package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error code
type ErrorCode string

const (
	// Local validation errors, detected before any external call (FETCH_INVALID_*)
	ErrorCodeInvalidScheme ErrorCode = "FETCH_INVALID_SCHEME"
	ErrorCodeInvalidMethod ErrorCode = "FETCH_INVALID_METHOD"

	// The external fetch service reported an application-level failure
	ErrorCodeServiceError ErrorCode = "FETCH_SERVICE_ERROR"

	// The response body was truncated and the caller did not allow truncation
	ErrorCodeTruncated ErrorCode = "FETCH_RESPONSE_TRUNCATED"
)

// DomainError represents a structured domain error with error code and context
type DomainError struct {
	Err     error
	Details map[string]interface{}
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail field to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with a domain error code
func WrapError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Err:     err,
	}
}

// IsDomainError checks if an error is a DomainError with the given code
func IsDomainError(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error, returns empty string if not a DomainError
func GetErrorCode(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsValidationError checks if an error is a local argument validation error
func IsValidationError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrorCodeInvalidScheme || code == ErrorCodeInvalidMethod
}

// IsServiceError checks if an error originated in the external fetch service
func IsServiceError(err error) bool {
	return GetErrorCode(err) == ErrorCodeServiceError
}

// IsTruncatedError checks if an error is a rejected truncated response
func IsTruncatedError(err error) bool {
	return GetErrorCode(err) == ErrorCodeTruncated
}

// Structured error instances
var (
	ErrInvalidScheme = NewDomainError(ErrorCodeInvalidScheme, "URL must start with http:// or https://")
	ErrInvalidMethod = NewDomainError(ErrorCodeInvalidMethod, "unsupported HTTP method")

	ErrTruncatedResponse = NewDomainError(ErrorCodeTruncated, "response body was truncated")
)
