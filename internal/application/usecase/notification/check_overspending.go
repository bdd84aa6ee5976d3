// Package notification contains the overspend and inactivity sweep use cases
// driven by the background notification worker.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// CheckOverspendingUseCase scans every budget and emits an overspend payload
// for each category whose month-to-date spend exceeds its limit.
type CheckOverspendingUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewCheckOverspendingUseCase creates a new CheckOverspendingUseCase instance.
func NewCheckOverspendingUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
) *CheckOverspendingUseCase {
	return &CheckOverspendingUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the use case's clock. Test hook.
func (uc *CheckOverspendingUseCase) WithClock(now func() time.Time) *CheckOverspendingUseCase {
	uc.now = now
	return uc
}

// Execute returns one payload per overspent (user, category) pair.
func (uc *CheckOverspendingUseCase) Execute(ctx context.Context) ([]*entity.Notification, error) {
	budgets, err := uc.budgetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	ref := uc.now()
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var notifications []*entity.Notification
	for _, budget := range budgets {
		expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
			UserID:    budget.UserID,
			StartDate: &start,
			EndDate:   &end,
			Category:  budget.Category,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load expenses for budget %s: %w", budget.ID, err)
		}

		totalSpent := decimal.Zero
		for _, e := range expenses {
			totalSpent = totalSpent.Add(e.Amount)
		}

		if totalSpent.GreaterThan(budget.Limit) {
			notifications = append(notifications, entity.NewOverspendNotification(
				budget.UserID,
				budget.Category,
				totalSpent.Sub(budget.Limit),
			))
		}
	}

	return notifications, nil
}
