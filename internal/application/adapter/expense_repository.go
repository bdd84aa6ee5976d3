// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
// Every query is scoped to UserID; the other fields are optional.
type ExpenseFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Tags      []string // Expense must carry every listed tag
}

// ExpenseRepository defines the interface for expense persistence operations.
//
// Implementations obtained through UnitOfWork run against the enclosing
// database transaction; the standalone implementation runs auto-committed.
type ExpenseRepository interface {
	// Create inserts a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense owned by userID.
	// Returns domain ErrExpenseNotFound for missing or foreign rows alike.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, newest date first.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// FindByDateRange retrieves a user's expenses with start <= date <= end,
	// newest date first.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Expense, error)

	// Update overwrites all mutable fields of an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense by ID. Deleting a row that is already gone is
	// not an error; reversal of a CREATE relies on that.
	Delete(ctx context.Context, id uuid.UUID) error
}
