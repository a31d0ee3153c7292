// Package error defines domain-specific errors for the Controle Financeiro application.
package error

import "errors"

// Contribution domain errors.
var (
	// ErrContributionNotFound is returned when a contribution is not found in the system.
	ErrContributionNotFound = errors.New("contribution not found")

	// ErrInvalidContributionValue is returned when the value is zero or negative.
	ErrInvalidContributionValue = errors.New("contribution value must be positive")
)

// ContributionErrorCode defines error codes for contribution errors.
// Format: APT-XXYYYY where XX is category and YYYY is specific error.
type ContributionErrorCode string

const (
	ErrCodeInvalidContributionValue  ContributionErrorCode = "APT-010001"
	ErrCodeMissingContributionFields ContributionErrorCode = "APT-010002"
	ErrCodeContributionNotFound      ContributionErrorCode = "APT-020001"
	ErrCodeContributionUserMissing   ContributionErrorCode = "APT-020002"
)

// ContributionError represents a contribution error with code and message.
type ContributionError struct {
	Code    ContributionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ContributionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ContributionError) Unwrap() error {
	return e.Err
}

// NewContributionError creates a new ContributionError with the given code and message.
func NewContributionError(code ContributionErrorCode, message string, err error) *ContributionError {
	return &ContributionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
