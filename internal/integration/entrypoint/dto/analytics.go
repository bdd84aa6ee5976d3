// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/spendwise/backend/internal/application/usecase/analytics"
)

// ScoreBreakdownResponse represents the score sub-components.
type ScoreBreakdownResponse struct {
	BudgetAdherence    int `json:"budget_adherence"`
	UsageFrequency     int `json:"usage_frequency"`
	TrackingDiscipline int `json:"tracking_discipline"`
}

// ScoreResponse represents the response for the score endpoint.
type ScoreResponse struct {
	Score     int                    `json:"score"`
	Breakdown ScoreBreakdownResponse `json:"breakdown"`
}

// BudgetUtilizationResponse represents one budget's month-to-date position.
type BudgetUtilizationResponse struct {
	Category       string `json:"category"`
	Limit          string `json:"limit"`
	Spent          string `json:"spent"`
	Remaining      string `json:"remaining"`
	PercentageUsed int    `json:"percentage_used"`
	Status         string `json:"status"`
}

// AnalyticsSummaryResponse aggregates the month's totals.
type AnalyticsSummaryResponse struct {
	TotalBudget             string `json:"total_budget"`
	TotalSpent              string `json:"total_spent"`
	BudgetedCategories      int    `json:"budgeted_categories"`
	UncategorizedCategories int    `json:"uncategorized_categories"`
}

// AnalyticsResponse represents the monthly analytics payload.
type AnalyticsResponse struct {
	Month                 string                      `json:"month"`
	Score                 int                         `json:"score"`
	ScoreBreakdown        ScoreBreakdownResponse      `json:"score_breakdown"`
	BudgetUtilization     []BudgetUtilizationResponse `json:"budget_utilization"`
	UncategorizedExpenses map[string]string           `json:"uncategorized_expenses"`
	Summary               AnalyticsSummaryResponse    `json:"summary"`
}

// ToScoreResponse converts a score output to a ScoreResponse DTO.
func ToScoreResponse(output *analytics.CalculateScoreOutput) ScoreResponse {
	return ScoreResponse{
		Score: output.TotalScore,
		Breakdown: ScoreBreakdownResponse{
			BudgetAdherence:    output.Breakdown.BudgetAdherence,
			UsageFrequency:     output.Breakdown.UsageFrequency,
			TrackingDiscipline: output.Breakdown.TrackingDiscipline,
		},
	}
}

// ToAnalyticsResponse converts an analytics output to an AnalyticsResponse DTO.
func ToAnalyticsResponse(output *analytics.GetAnalyticsOutput) AnalyticsResponse {
	utilization := make([]BudgetUtilizationResponse, len(output.BudgetUtilization))
	for i, u := range output.BudgetUtilization {
		utilization[i] = BudgetUtilizationResponse{
			Category:       u.Category,
			Limit:          u.Limit.StringFixed(2),
			Spent:          u.Spent.StringFixed(2),
			Remaining:      u.Remaining.StringFixed(2),
			PercentageUsed: u.PercentageUsed,
			Status:         string(u.Status),
		}
	}

	uncategorized := make(map[string]string, len(output.UncategorizedExpenses))
	for category, spent := range output.UncategorizedExpenses {
		uncategorized[category] = spent.StringFixed(2)
	}

	return AnalyticsResponse{
		Month: output.Month,
		Score: output.Score,
		ScoreBreakdown: ScoreBreakdownResponse{
			BudgetAdherence:    output.ScoreBreakdown.BudgetAdherence,
			UsageFrequency:     output.ScoreBreakdown.UsageFrequency,
			TrackingDiscipline: output.ScoreBreakdown.TrackingDiscipline,
		},
		BudgetUtilization:     utilization,
		UncategorizedExpenses: uncategorized,
		Summary: AnalyticsSummaryResponse{
			TotalBudget:             output.Summary.TotalBudget.StringFixed(2),
			TotalSpent:              output.Summary.TotalSpent.StringFixed(2),
			BudgetedCategories:      output.Summary.BudgetedCategories,
			UncategorizedCategories: output.Summary.UncategorizedCategories,
		},
	}
}
