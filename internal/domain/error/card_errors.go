// Package error defines domain-specific errors for the Controle Financeiro application.
package error

import "errors"

// Card domain errors.
var (
	// ErrCardNotFound is returned when a card is not found in the system.
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidCycleDay is returned when a closing or due day is outside 1-31.
	ErrInvalidCycleDay = errors.New("cycle day must be between 1 and 31")

	// ErrCycleDayOutOfMonth is returned when a closing or due day does not exist
	// in the month a cycle date would be built for (e.g. day 31 in April).
	ErrCycleDayOutOfMonth = errors.New("cycle day does not exist in target month")

	// ErrCardHasExpenses is returned when deleting a card that expenses still
	// reference.
	ErrCardHasExpenses = errors.New("card has associated expenses")
)

// CardErrorCode defines error codes for card errors.
// Format: CRD-XXYYYY where XX is category and YYYY is specific error.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCycleDay    CardErrorCode = "CRD-010001"
	ErrCodeCycleDayOutOfMonth CardErrorCode = "CRD-010002"
	ErrCodeMissingCardFields  CardErrorCode = "CRD-010003"

	// Lookup errors (02XXXX)
	ErrCodeCardNotFound    CardErrorCode = "CRD-020001"
	ErrCodeCardUserMissing CardErrorCode = "CRD-020002"

	// Conflict errors (03XXXX)
	ErrCodeCardHasExpenses CardErrorCode = "CRD-030001"
)

// CardError represents a card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
