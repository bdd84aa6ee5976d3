// Package analytics contains the read-only score and analytics use cases.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// BudgetUtilization is the month-to-date spend position of one budget.
type BudgetUtilization struct {
	Category       string
	Limit          decimal.Decimal
	Spent          decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed int
	Status         entity.BudgetStatus
}

// AnalyticsSummary aggregates the month's totals.
type AnalyticsSummary struct {
	TotalBudget             decimal.Decimal
	TotalSpent              decimal.Decimal
	BudgetedCategories      int
	UncategorizedCategories int
}

// GetAnalyticsOutput is the full monthly analytics payload.
type GetAnalyticsOutput struct {
	Month                 string // "YYYY-MM"
	Score                 int
	ScoreBreakdown        ScoreBreakdown
	BudgetUtilization     []BudgetUtilization
	UncategorizedExpenses map[string]decimal.Decimal // Spend in categories without a budget
	Summary               AnalyticsSummary
}

// GetAnalyticsUseCase builds the monthly analytics view: score, per-budget
// utilization bands and non-budgeted spend.
type GetAnalyticsUseCase struct {
	expenseRepo adapter.ExpenseRepository
	budgetRepo  adapter.BudgetRepository
	score       *CalculateScoreUseCase
	now         func() time.Time
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	score *CalculateScoreUseCase,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		score:       score,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the use case's clock. Test hook.
func (uc *GetAnalyticsUseCase) WithClock(now func() time.Time) *GetAnalyticsUseCase {
	uc.now = now
	if uc.score != nil {
		uc.score.WithClock(now)
	}
	return uc
}

// Execute builds the analytics payload for the current month.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*GetAnalyticsOutput, error) {
	start, end := monthRange(uc.now())

	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	score, err := uc.score.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[string]decimal.Decimal)
	totalSpent := decimal.Zero
	for _, e := range expenses {
		spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount)
		totalSpent = totalSpent.Add(e.Amount)
	}

	hundred := decimal.NewFromInt(100)
	utilization := make([]BudgetUtilization, 0, len(budgets))
	totalBudget := decimal.Zero
	budgeted := make(map[string]struct{}, len(budgets))

	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		percentage := 0
		if b.Limit.IsPositive() {
			percentage = int(spent.Div(b.Limit).Mul(hundred).Round(0).IntPart())
		}
		utilization = append(utilization, BudgetUtilization{
			Category:       b.Category,
			Limit:          b.Limit,
			Spent:          spent,
			Remaining:      b.Limit.Sub(spent),
			PercentageUsed: percentage,
			Status:         entity.StatusFor(spent, b.Limit),
		})
		totalBudget = totalBudget.Add(b.Limit)
		budgeted[b.Category] = struct{}{}
	}

	uncategorized := make(map[string]decimal.Decimal)
	for category, spent := range spentByCategory {
		if _, ok := budgeted[category]; !ok {
			uncategorized[category] = spent
		}
	}

	return &GetAnalyticsOutput{
		Month:                 start.Format("2006-01"),
		Score:                 score.TotalScore,
		ScoreBreakdown:        score.Breakdown,
		BudgetUtilization:     utilization,
		UncategorizedExpenses: uncategorized,
		Summary: AnalyticsSummary{
			TotalBudget:             totalBudget,
			TotalSpent:              totalSpent,
			BudgetedCategories:      len(budgets),
			UncategorizedCategories: len(uncategorized),
		},
	}, nil
}
