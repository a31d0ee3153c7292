// Package error defines domain-specific errors for the Controle Financeiro application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseKind is returned when the expense kind is invalid.
	ErrInvalidExpenseKind = errors.New("invalid expense kind")

	// ErrInvalidExpenseStatus is returned when the expense status is invalid.
	ErrInvalidExpenseStatus = errors.New("invalid expense status")

	// ErrInvalidExpenseFrequency is returned when the recurrence frequency is invalid.
	ErrInvalidExpenseFrequency = errors.New("invalid recurrence frequency")

	// ErrInvalidExpenseValue is returned when the total value is zero or negative.
	ErrInvalidExpenseValue = errors.New("expense value must be positive")

	// ErrExpenseHasPendingChildren is returned when deleting a parent whose
	// installments or recurrences are still pending and no cascade was requested.
	ErrExpenseHasPendingChildren = errors.New("expense has pending installments or recurrences")

	// ErrExpenseNotParent is returned when a child-only operation targets a parent
	// or a parent-only operation targets a child.
	ErrExpenseNotParent = errors.New("expense is not a parent record")

	// ErrChildrenAlreadyGenerated is returned when generation is requested for a
	// parent that already has children.
	ErrChildrenAlreadyGenerated = errors.New("children already generated for expense")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseKind      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseStatus    ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseFrequency ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseValue     ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseDate      ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields    ExpenseErrorCode = "EXP-010006"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound    ExpenseErrorCode = "EXP-020001"
	ErrCodeExpCategoryMissing ExpenseErrorCode = "EXP-020002"
	ErrCodeExpCardMissing     ExpenseErrorCode = "EXP-020003"
	ErrCodeExpPayerMissing    ExpenseErrorCode = "EXP-020004"

	// Conflict errors (03XXXX)
	ErrCodeExpensePendingChildren   ExpenseErrorCode = "EXP-030001"
	ErrCodeExpenseChildrenGenerated ExpenseErrorCode = "EXP-030002"
	ErrCodeExpenseNotParent         ExpenseErrorCode = "EXP-030003"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
