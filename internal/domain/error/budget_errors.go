// Package error defines domain-specific errors for the accounting engine.
package error

import (
	"errors"
	"fmt"
	"strings"
)

// Budget matrix domain errors.
var (
	// ErrInvalidBudgetYear is returned when the requested year is out of range.
	ErrInvalidBudgetYear = errors.New("invalid budget year")

	// ErrDuplicateBudgetCategory is returned when a save contains the same
	// category twice for one year.
	ErrDuplicateBudgetCategory = errors.New("duplicate category in budget year")

	// ErrCSVImportRejected is returned when any row of a CSV import fails
	// validation; the whole import is rejected.
	ErrCSVImportRejected = errors.New("csv import rejected")

	// ErrCSVMissingHeader is returned when the CSV header row is missing
	// or malformed.
	ErrCSVMissingHeader = errors.New("csv header missing or malformed")
)

// BudgetErrorCode defines error codes for budget matrix errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetYear       BudgetErrorCode = "BGT-010001"
	ErrCodeDuplicateBudgetCategory BudgetErrorCode = "BGT-010002"
	ErrCodeCSVImportRejected       BudgetErrorCode = "BGT-010003"
	ErrCodeCSVMissingHeader        BudgetErrorCode = "BGT-010004"
)

// BudgetError represents a budget matrix error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CSVRowError describes a single invalid row in a CSV import.
type CSVRowError struct {
	Row      int // 1-based data row number, excluding the header
	Category string
	Reason   string
}

func (e CSVRowError) String() string {
	return fmt.Sprintf("row %d (%s): %s", e.Row, e.Category, e.Reason)
}

// CSVImportError aggregates every invalid row of a rejected import so the
// caller can correct the file in one pass.
type CSVImportError struct {
	Rows []CSVRowError
}

// Error implements the error interface.
func (e *CSVImportError) Error() string {
	parts := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		parts[i] = r.String()
	}
	return "csv import rejected: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrCSVImportRejected.
func (e *CSVImportError) Unwrap() error {
	return ErrCSVImportRejected
}
