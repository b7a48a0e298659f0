// Package error defines domain-specific errors for the accounting engine.
package error

import "errors"

// Chart-of-accounts domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the chart.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateCode is returned when an account code already exists.
	ErrDuplicateCode = errors.New("account code already exists")

	// ErrParentNotFound is returned when the referenced parent account is missing.
	ErrParentNotFound = errors.New("parent account not found")

	// ErrInvalidAccountNature is returned when the account nature is invalid.
	ErrInvalidAccountNature = errors.New("invalid account nature")

	// ErrAccountHasTransactions is returned when deactivating an account
	// that transactions still reference.
	ErrAccountHasTransactions = errors.New("account has transactions")

	// ErrAccountHasChildren is returned when deactivating an account that
	// still has active child accounts.
	ErrAccountHasChildren = errors.New("account has active children")

	// ErrAccountInactive is returned when an operation targets a
	// deactivated account.
	ErrAccountInactive = errors.New("account is inactive")
)

// AccountErrorCode defines error codes for chart-of-accounts errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDuplicateCode        AccountErrorCode = "ACC-010001"
	ErrCodeParentNotFound       AccountErrorCode = "ACC-010002"
	ErrCodeInvalidNature        AccountErrorCode = "ACC-010003"
	ErrCodeAccountNotFound      AccountErrorCode = "ACC-010004"
	ErrCodeMissingAccountFields AccountErrorCode = "ACC-010005"

	// Referential errors (02XXXX)
	ErrCodeAccountHasTransactions AccountErrorCode = "ACC-020001"
	ErrCodeAccountHasChildren     AccountErrorCode = "ACC-020002"
	ErrCodeAccountInactive        AccountErrorCode = "ACC-020003"
)

// AccountError represents a chart-of-accounts error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
