package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) FindByFilter(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Expense, error) {
	return f.FindByFilter(ctx, adapter.ExpenseFilter{UserID: userID, StartDate: &start, EndDate: &end})
}

func (f *fakeExpenseRepo) Update(context.Context, *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(context.Context, uuid.UUID) error       { return nil }

type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	f.budgets = append(f.budgets, budget)
	return nil
}

func (f *fakeBudgetRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}

func (f *fakeBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) FindByUserAndCategory(context.Context, uuid.UUID, string) (*entity.Budget, error) {
	return nil, nil
}

func (f *fakeBudgetRepo) Update(context.Context, *entity.Budget) error { return nil }

func (f *fakeBudgetRepo) FindAll(context.Context) ([]*entity.Budget, error) {
	return f.budgets, nil
}

type countingScoreCache struct {
	stored *adapter.ScoreSnapshot
	gets   int
	sets   int
}

func (c *countingScoreCache) Get(context.Context, uuid.UUID) (*adapter.ScoreSnapshot, error) {
	c.gets++
	return c.stored, nil
}

func (c *countingScoreCache) Set(_ context.Context, _ uuid.UUID, score *adapter.ScoreSnapshot) error {
	c.sets++
	c.stored = score
	return nil
}

func (c *countingScoreCache) Invalidate(context.Context, uuid.UUID) error {
	c.stored = nil
	return nil
}

// fixedClock pins the month to March 2026.
func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func expenseOn(userID uuid.UUID, day int, category string, amount float64, tags []string, notes string) *entity.Expense {
	return entity.NewExpense(userID, decimal.NewFromFloat(amount), category,
		time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC), tags, notes)
}

func TestCalculateScore_NoActivity(t *testing.T) {
	userID := uuid.New()
	uc := NewCalculateScoreUseCase(&fakeExpenseRepo{}, &fakeBudgetRepo{}, nil).WithClock(fixedClock)

	output, err := uc.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	// No budgets keeps the full adherence sub-score; no expenses zeroes the rest
	if output.Breakdown.BudgetAdherence != 30 {
		t.Errorf("BudgetAdherence = %d, want 30", output.Breakdown.BudgetAdherence)
	}
	if output.Breakdown.UsageFrequency != 0 {
		t.Errorf("UsageFrequency = %d, want 0", output.Breakdown.UsageFrequency)
	}
	if output.Breakdown.TrackingDiscipline != 0 {
		t.Errorf("TrackingDiscipline = %d, want 0", output.Breakdown.TrackingDiscipline)
	}
	if output.TotalScore != 30 {
		t.Errorf("TotalScore = %d, want 30", output.TotalScore)
	}
}

func TestCalculateScore_FullyDisciplinedMonth(t *testing.T) {
	userID := uuid.New()
	expenses := &fakeExpenseRepo{}
	budgets := &fakeBudgetRepo{}
	_ = budgets.Create(context.Background(), entity.NewBudget(userID, "Food", decimal.NewFromInt(500)))

	// An annotated, tagged expense on every day of March, all within budget
	for day := 1; day <= 31; day++ {
		_ = expenses.Create(context.Background(),
			expenseOn(userID, day, "Food", 10, []string{"daily"}, "logged"))
	}

	uc := NewCalculateScoreUseCase(expenses, budgets, nil).WithClock(fixedClock)
	output, err := uc.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100 (breakdown %+v)", output.TotalScore, output.Breakdown)
	}
}

func TestCalculateScore_OverspendingDeductsAdherence(t *testing.T) {
	userID := uuid.New()
	expenses := &fakeExpenseRepo{}
	budgets := &fakeBudgetRepo{}
	_ = budgets.Create(context.Background(), entity.NewBudget(userID, "Food", decimal.NewFromInt(100)))

	// 150 spent against a 100 limit: 50% overage costs 5 adherence points
	_ = expenses.Create(context.Background(), expenseOn(userID, 5, "Food", 150, nil, ""))

	uc := NewCalculateScoreUseCase(expenses, budgets, nil).WithClock(fixedClock)
	output, err := uc.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Breakdown.BudgetAdherence != 25 {
		t.Errorf("BudgetAdherence = %d, want 25", output.Breakdown.BudgetAdherence)
	}
}

func TestCalculateScore_ServedFromCache(t *testing.T) {
	userID := uuid.New()
	cache := &countingScoreCache{stored: &adapter.ScoreSnapshot{
		TotalScore:         77,
		BudgetAdherence:    30,
		UsageFrequency:     20,
		TrackingDiscipline: 27,
	}}

	uc := NewCalculateScoreUseCase(&fakeExpenseRepo{}, &fakeBudgetRepo{}, cache).WithClock(fixedClock)
	output, err := uc.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.TotalScore != 77 {
		t.Errorf("TotalScore = %d, want the cached 77", output.TotalScore)
	}
	if cache.sets != 0 {
		t.Errorf("cache.sets = %d, want 0 on a cache hit", cache.sets)
	}
}

func TestCalculateScore_PopulatesCacheOnMiss(t *testing.T) {
	userID := uuid.New()
	cache := &countingScoreCache{}

	uc := NewCalculateScoreUseCase(&fakeExpenseRepo{}, &fakeBudgetRepo{}, cache).WithClock(fixedClock)
	if _, err := uc.Execute(context.Background(), userID); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if cache.sets != 1 {
		t.Errorf("cache.sets = %d, want 1 after a miss", cache.sets)
	}
	if cache.stored == nil || cache.stored.TotalScore != 30 {
		t.Errorf("cached snapshot = %+v, want TotalScore 30", cache.stored)
	}
}

func TestGetAnalytics_UtilizationAndUncategorized(t *testing.T) {
	userID := uuid.New()
	expenses := &fakeExpenseRepo{}
	budgets := &fakeBudgetRepo{}
	_ = budgets.Create(context.Background(), entity.NewBudget(userID, "Food", decimal.NewFromInt(200)))

	_ = expenses.Create(context.Background(), expenseOn(userID, 5, "Food", 170, nil, ""))
	_ = expenses.Create(context.Background(), expenseOn(userID, 6, "Travel", 80, nil, ""))

	score := NewCalculateScoreUseCase(expenses, budgets, nil)
	uc := NewGetAnalyticsUseCase(expenses, budgets, score).WithClock(fixedClock)

	output, err := uc.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Month != "2026-03" {
		t.Errorf("Month = %q, want 2026-03", output.Month)
	}
	if len(output.BudgetUtilization) != 1 {
		t.Fatalf("BudgetUtilization has %d rows, want 1", len(output.BudgetUtilization))
	}
	food := output.BudgetUtilization[0]
	if food.PercentageUsed != 85 {
		t.Errorf("PercentageUsed = %d, want 85", food.PercentageUsed)
	}
	if food.Status != entity.BudgetStatusWarning {
		t.Errorf("Status = %s, want WARNING", food.Status)
	}
	if !food.Remaining.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Remaining = %s, want 30", food.Remaining)
	}

	travel, ok := output.UncategorizedExpenses["Travel"]
	if !ok || !travel.Equal(decimal.NewFromInt(80)) {
		t.Errorf("UncategorizedExpenses[Travel] = %v, want 80", travel)
	}
	if !output.Summary.TotalSpent.Equal(decimal.NewFromInt(250)) {
		t.Errorf("TotalSpent = %s, want 250", output.Summary.TotalSpent)
	}
	if output.Summary.UncategorizedCategories != 1 {
		t.Errorf("UncategorizedCategories = %d, want 1", output.Summary.UncategorizedCategories)
	}
}
