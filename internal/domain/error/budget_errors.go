// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found or not owned by the caller.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the category.
	ErrBudgetAlreadyExists = errors.New("budget already exists for category")

	// ErrInvalidBudgetLimit is returned when the budget limit is not positive.
	ErrInvalidBudgetLimit = errors.New("budget limit must be positive")

	// ErrEmptyBudgetCategory is returned when the budget category is empty.
	ErrEmptyBudgetCategory = errors.New("budget category must not be empty")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound      BudgetErrorCode = "BGT-010001"
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetLimit  BudgetErrorCode = "BGT-010003"
	ErrCodeEmptyBudgetCategory BudgetErrorCode = "BGT-010004"
)

// BudgetError represents a budget error with code and message.
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
