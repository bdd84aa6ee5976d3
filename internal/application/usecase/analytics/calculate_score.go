// Package analytics contains the read-only score and analytics use cases.
// Everything here aggregates the expense and budget stores for the current
// calendar month; no state is mutated.
package analytics

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// Sub-score caps for the composite financial-health score.
const (
	maxBudgetAdherenceScore    = 30.0
	maxUsageFrequencyScore     = 30.0
	maxTrackingDisciplineScore = 40.0
	overagePenaltyFactor       = 10.0
)

// ScoreBreakdown holds the three capped sub-scores.
type ScoreBreakdown struct {
	BudgetAdherence    int
	UsageFrequency     int
	TrackingDiscipline int
}

// CalculateScoreOutput represents the computed financial-health score.
type CalculateScoreOutput struct {
	TotalScore int
	Breakdown  ScoreBreakdown
}

// CalculateScoreUseCase computes the 0-100 composite score for the current
// month. Results are cached per user; every ledger-wrapped mutation
// invalidates the cache.
type CalculateScoreUseCase struct {
	expenseRepo adapter.ExpenseRepository
	budgetRepo  adapter.BudgetRepository
	scoreCache  adapter.ScoreCache
	now         func() time.Time
}

// NewCalculateScoreUseCase creates a new CalculateScoreUseCase instance.
func NewCalculateScoreUseCase(
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	scoreCache adapter.ScoreCache,
) *CalculateScoreUseCase {
	return &CalculateScoreUseCase{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		scoreCache:  scoreCache,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the use case's clock. Test hook.
func (uc *CalculateScoreUseCase) WithClock(now func() time.Time) *CalculateScoreUseCase {
	uc.now = now
	return uc
}

// Execute computes (or serves from cache) the user's score.
func (uc *CalculateScoreUseCase) Execute(ctx context.Context, userID uuid.UUID) (*CalculateScoreOutput, error) {
	if uc.scoreCache != nil {
		cached, err := uc.scoreCache.Get(ctx, userID)
		if err != nil {
			slog.Warn("Score cache read failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return &CalculateScoreOutput{
				TotalScore: cached.TotalScore,
				Breakdown: ScoreBreakdown{
					BudgetAdherence:    cached.BudgetAdherence,
					UsageFrequency:     cached.UsageFrequency,
					TrackingDiscipline: cached.TrackingDiscipline,
				},
			}, nil
		}
	}

	start, end := monthRange(uc.now())

	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	budgetScore := budgetAdherenceScore(budgets, expenses)
	frequencyScore := usageFrequencyScore(expenses, end.Day())
	disciplineScore := trackingDisciplineScore(expenses)

	output := &CalculateScoreOutput{
		TotalScore: int(math.Round(budgetScore + frequencyScore + disciplineScore)),
		Breakdown: ScoreBreakdown{
			BudgetAdherence:    int(math.Round(budgetScore)),
			UsageFrequency:     int(math.Round(frequencyScore)),
			TrackingDiscipline: int(math.Round(disciplineScore)),
		},
	}

	if uc.scoreCache != nil {
		err := uc.scoreCache.Set(ctx, userID, &adapter.ScoreSnapshot{
			TotalScore:         output.TotalScore,
			BudgetAdherence:    output.Breakdown.BudgetAdherence,
			UsageFrequency:     output.Breakdown.UsageFrequency,
			TrackingDiscipline: output.Breakdown.TrackingDiscipline,
		})
		if err != nil {
			slog.Warn("Score cache write failed", "user_id", userID, "error", err)
		}
	}

	return output, nil
}

// budgetAdherenceScore starts at the cap and deducts for each overspent
// budget proportionally to how far past the limit the user went. Users with
// no budgets keep the full sub-score.
func budgetAdherenceScore(budgets []*entity.Budget, expenses []*entity.Expense) float64 {
	if len(budgets) == 0 {
		return maxBudgetAdherenceScore
	}

	spentByCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount)
	}

	overages := 0.0
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		if spent.GreaterThan(b.Limit) && b.Limit.IsPositive() {
			overages += spent.Sub(b.Limit).Div(b.Limit).InexactFloat64()
		}
	}

	return math.Max(0, maxBudgetAdherenceScore-overages*overagePenaltyFactor)
}

// usageFrequencyScore rewards logging expenses on many distinct days of the
// month.
func usageFrequencyScore(expenses []*entity.Expense, daysInMonth int) float64 {
	uniqueDays := make(map[string]struct{})
	for _, e := range expenses {
		uniqueDays[e.Date.Format("2006-01-02")] = struct{}{}
	}
	return math.Min(maxUsageFrequencyScore, float64(len(uniqueDays))/float64(daysInMonth)*maxUsageFrequencyScore)
}

// trackingDisciplineScore rewards annotating expenses with notes and tags.
func trackingDisciplineScore(expenses []*entity.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	withNotes := 0
	withTags := 0
	for _, e := range expenses {
		if e.Notes != "" {
			withNotes++
		}
		if len(e.Tags) > 0 {
			withTags++
		}
	}
	ratio := float64(withNotes+withTags) / float64(len(expenses)*2)
	return math.Min(maxTrackingDisciplineScore, ratio*maxTrackingDisciplineScore)
}

// monthRange returns the inclusive bounds of the calendar month containing ref.
func monthRange(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
