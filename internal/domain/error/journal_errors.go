// Package error defines domain-specific errors for the accounting engine.
package error

import "errors"

// Journal entry domain errors.
var (
	// ErrEntryNotFound is returned when a journal entry is not found.
	ErrEntryNotFound = errors.New("journal entry not found")

	// ErrUnbalancedEntry is returned when an entry's debits do not equal
	// its credits.
	ErrUnbalancedEntry = errors.New("journal entry debits and credits do not balance")

	// ErrEntryTooFewLines is returned when an entry has fewer than two lines.
	ErrEntryTooFewLines = errors.New("journal entry needs at least two lines")

	// ErrLineNotOneSided is returned when a line carries an amount on both
	// sides, or on neither.
	ErrLineNotOneSided = errors.New("journal entry line must have exactly one non-zero side")

	// ErrEntryTotalsMismatch is returned when the header totals disagree
	// with the line sums.
	ErrEntryTotalsMismatch = errors.New("journal entry totals do not match lines")

	// ErrInvalidStatusTransition is returned on an illegal status change.
	ErrInvalidStatusTransition = errors.New("invalid journal entry status transition")

	// ErrEntryPosted is returned when attempting to mutate a posted entry.
	ErrEntryPosted = errors.New("posted journal entries are immutable")

	// ErrNoMappingFound is returned when the account resolver cannot find a
	// cash or operational account for a transaction type.
	ErrNoMappingFound = errors.New("no account mapping found for transaction type")

	// ErrEntryAlreadyLinked is returned when generating an entry for a
	// transaction that already has one.
	ErrEntryAlreadyLinked = errors.New("transaction already has a journal entry")
)

// JournalErrorCode defines error codes for journal entry errors.
// Format: JRN-XXYYYY where XX is category and YYYY is specific error.
type JournalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnbalancedEntry         JournalErrorCode = "JRN-010001"
	ErrCodeEntryTooFewLines        JournalErrorCode = "JRN-010002"
	ErrCodeLineNotOneSided         JournalErrorCode = "JRN-010003"
	ErrCodeEntryNotFound           JournalErrorCode = "JRN-010004"
	ErrCodeInvalidStatusTransition JournalErrorCode = "JRN-010005"

	// Referential errors (02XXXX)
	ErrCodeNoMappingFound     JournalErrorCode = "JRN-020001"
	ErrCodeEntryAlreadyLinked JournalErrorCode = "JRN-020002"
	ErrCodeEntryPosted        JournalErrorCode = "JRN-020003"
)

// JournalError represents a journal entry error with code and message.
type JournalError struct {
	Code    JournalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *JournalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *JournalError) Unwrap() error {
	return e.Err
}

// NewJournalError creates a new JournalError with the given code and message.
func NewJournalError(code JournalErrorCode, message string, err error) *JournalError {
	return &JournalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
