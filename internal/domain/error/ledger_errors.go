// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrNoTransactionToReverse is returned when a user has no unreversed ledger entry.
	ErrNoTransactionToReverse = errors.New("no transaction found to reverse")

	// ErrLedgerEntryNotFound is returned when a ledger entry lookup finds nothing.
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")

	// ErrEntryAlreadyReversed is returned when a reversal races with another reversal
	// of the same entry; the guarded flag flip affected zero rows.
	ErrEntryAlreadyReversed = errors.New("ledger entry already reversed")

	// ErrInvalidSnapshot is returned when a ledger entry's serialized snapshot
	// cannot be decoded.
	ErrInvalidSnapshot = errors.New("invalid ledger snapshot payload")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	ErrCodeNoTransactionToReverse LedgerErrorCode = "LDG-010001"
	ErrCodeLedgerEntryNotFound    LedgerErrorCode = "LDG-010002"
	ErrCodeEntryAlreadyReversed   LedgerErrorCode = "LDG-010003"
	ErrCodeInvalidSnapshot        LedgerErrorCode = "LDG-020001"
	ErrCodeLedgerStorageFailure   LedgerErrorCode = "LDG-030001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
