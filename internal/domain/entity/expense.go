// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the category assigned to expenses no classifier rule matched.
const UncategorizedLabel = "Uncategorized"

// Expense represents a single logged expense in the SpendWise system.
// Expenses are mutated only through ledger-wrapped operations so that every
// change is journaled with before/after snapshots.
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal // Always >= 0
	Category  string
	Date      time.Time
	Tags      []string // Set semantics, order irrelevant
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	amount decimal.Decimal,
	category string,
	date time.Time,
	tags []string,
	notes string,
) *Expense {
	now := time.Now().UTC()

	if category == "" {
		category = UncategorizedLabel
	}
	if tags == nil {
		tags = []string{}
	}

	return &Expense{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Category:  category,
		Date:      date,
		Tags:      tags,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Snapshot captures the expense's current field values for ledger journaling.
func (e *Expense) Snapshot() *ExpenseSnapshot {
	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)

	return &ExpenseSnapshot{
		ID:       e.ID,
		Amount:   e.Amount,
		Category: e.Category,
		Date:     e.Date,
		Tags:     tags,
		Notes:    e.Notes,
	}
}

// ExpenseSnapshot is the serialized before/after state carried by a ledger
// entry. It intentionally excludes UserID (the entry itself records the owner)
// and timestamps other than the expense date.
type ExpenseSnapshot struct {
	ID       uuid.UUID       `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Tags     []string        `json:"tags"`
	Notes    string          `json:"notes,omitempty"`
}

// Restore overwrites the expense's fields with the snapshot's values.
// Identity and ownership are untouched; this is a full field restore,
// not a merge.
func (e *Expense) Restore(s *ExpenseSnapshot) {
	e.Amount = s.Amount
	e.Category = s.Category
	e.Date = s.Date
	e.Tags = append([]string{}, s.Tags...)
	e.Notes = s.Notes
	e.UpdatedAt = time.Now().UTC()
}
