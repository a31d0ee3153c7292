// Package error defines domain-specific errors for the Controle Financeiro application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when a category is created without a name.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryInUse is returned when deleting a category that expenses still
	// reference.
	ErrCategoryInUse = errors.New("category has associated expenses")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryInUse        CategoryErrorCode = "CAT-030001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
