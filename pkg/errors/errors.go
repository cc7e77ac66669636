package errors

import (
	"fmt"
)

// ErrorCategory represents the category of error for handling
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "transient"
	CategoryInvalidRequest ErrorCategory = "invalid_request"
	CategorySizeLimit      ErrorCategory = "size_limit"
	CategoryNetwork        ErrorCategory = "network"
	CategorySecurity       ErrorCategory = "security"
	CategoryInternal       ErrorCategory = "internal"
)

// FetchError represents an application-level failure reported by the fetch
// service, after its numeric code has been mapped to a descriptive label
type FetchError struct {
	Code           int32
	Label          string
	ServiceMessage string
	IsTransient    bool
	Category       ErrorCategory
}

func (e *FetchError) Error() string {
	if e.ServiceMessage != "" {
		return fmt.Sprintf("%s: %s", e.Label, e.ServiceMessage)
	}
	return e.Label
}

// NewFetchError creates a new fetch error
func NewFetchError(code int32, label, serviceMessage string, category ErrorCategory, transient bool) *FetchError {
	return &FetchError{
		Code:           code,
		Label:          label,
		ServiceMessage: serviceMessage,
		Category:       category,
		IsTransient:    transient,
	}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
