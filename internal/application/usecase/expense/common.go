// Package expense contains expense-related use cases. Every mutation runs
// inside a unit of work that also appends the matching ledger entry.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxNotesLength is the maximum allowed length for expense notes.
	MaxNotesLength = 1000
)

// ExpenseOutput is the use-case-level representation of an expense returned
// to controllers.
type ExpenseOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Category  string
	Date      time.Time
	Tags      []string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
