// Package error defines domain-specific errors for the Controle Financeiro application.
package error

import "errors"

// User management domain errors.
var (
	// ErrCannotDeleteSelf is returned when an admin attempts to delete their own account.
	ErrCannotDeleteSelf = errors.New("cannot delete own user")
)

// UserErrorCode defines error codes for user management errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingUserFields UserErrorCode = "USR-010001"
	ErrCodeUserEmailExists   UserErrorCode = "USR-010002"
	ErrCodeUserInvalidRole   UserErrorCode = "USR-010003"

	// Lookup errors (02XXXX)
	ErrCodeTargetUserNotFound UserErrorCode = "USR-020001"

	// Conflict errors (03XXXX)
	ErrCodeCannotDeleteSelf UserErrorCode = "USR-030001"

	// Permission errors (04XXXX)
	ErrCodeUserPermissionDenied UserErrorCode = "USR-040001"
)

// UserError represents a user management error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
