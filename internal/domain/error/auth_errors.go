// Package error defines domain-specific errors for the accounting engine.
package error

// AuthErrorCode defines error codes for authentication failures.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUT-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-010002"
)
