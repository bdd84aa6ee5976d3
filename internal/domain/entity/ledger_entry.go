// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType identifies which expense mutation a ledger entry records.
type TransactionType string

const (
	TransactionTypeCreate TransactionType = "CREATE"
	TransactionTypeUpdate TransactionType = "UPDATE"
	TransactionTypeDelete TransactionType = "DELETE"
)

// LedgerEntry is the immutable audit record of one expense mutation.
//
// After creation the only permitted change is the single transition
// IsReversed false -> true (together with ReversedAt). CREATE entries carry
// NewData only, DELETE entries OldData only, UPDATE entries both.
type LedgerEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ExpenseID       *uuid.UUID // Nil for a DELETE whose row is gone; may point at a now-deleted expense
	TransactionType TransactionType
	OldData         *ExpenseSnapshot
	NewData         *ExpenseSnapshot
	IsReversed      bool
	ReversedAt      *time.Time
	CreatedAt       time.Time
}

// NewLedgerEntry creates a ledger entry for a freshly executed mutation.
func NewLedgerEntry(
	userID uuid.UUID,
	expenseID *uuid.UUID,
	transactionType TransactionType,
	oldData, newData *ExpenseSnapshot,
) *LedgerEntry {
	return &LedgerEntry{
		ID:              uuid.New(),
		UserID:          userID,
		ExpenseID:       expenseID,
		TransactionType: transactionType,
		OldData:         oldData,
		NewData:         newData,
		IsReversed:      false,
		CreatedAt:       time.Now().UTC(),
	}
}

// NewReversalEntry creates the record documenting that an entry was reversed.
// It mirrors the original's type and snapshots and is born with IsReversed
// already set: a settled reversal is never itself a reversal target.
func NewReversalEntry(original *LedgerEntry) *LedgerEntry {
	return &LedgerEntry{
		ID:              uuid.New(),
		UserID:          original.UserID,
		ExpenseID:       original.ExpenseID,
		TransactionType: original.TransactionType,
		OldData:         original.OldData,
		NewData:         original.NewData,
		IsReversed:      true,
		CreatedAt:       time.Now().UTC(),
	}
}
