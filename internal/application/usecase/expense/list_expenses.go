// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Tags      []string
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// MonthlyTotalOutput aggregates a calendar month of spending.
type MonthlyTotalOutput struct {
	Total      decimal.Decimal
	ByCategory map[string]decimal.Decimal
}

// ListExpensesUseCase handles expense listing and monthly aggregation.
// Pure reads; no ledger involvement.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves expenses matching the filter, newest date first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
		Tags:      input.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{Expenses: make([]*ExpenseOutput, len(expenses))}
	for i, e := range expenses {
		output.Expenses[i] = toExpenseOutput(e)
	}
	return output, nil
}

// MonthlyTotal sums the user's spending for the calendar month containing ref.
func (uc *ListExpensesUseCase) MonthlyTotal(ctx context.Context, userID uuid.UUID, ref time.Time) (*MonthlyTotalOutput, error) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly expenses: %w", err)
	}

	out := &MonthlyTotalOutput{
		Total:      decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}
	for _, e := range expenses {
		out.Total = out.Total.Add(e.Amount)
		out.ByCategory[e.Category] = out.ByCategory[e.Category].Add(e.Amount)
	}
	return out, nil
}
