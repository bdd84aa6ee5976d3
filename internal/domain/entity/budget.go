// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a per-category monthly spending limit.
// A user has at most one budget per category.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Limit     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, limit decimal.Decimal) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Limit:     limit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BudgetStatus is the utilization band for a budget in the current month.
type BudgetStatus string

const (
	BudgetStatusGood     BudgetStatus = "GOOD"     // < 50% used
	BudgetStatusModerate BudgetStatus = "MODERATE" // 50-79%
	BudgetStatusWarning  BudgetStatus = "WARNING"  // 80-99%
	BudgetStatusExceeded BudgetStatus = "EXCEEDED" // >= 100%
)

// StatusFor buckets a spent/limit ratio into its utilization band.
func StatusFor(spent, limit decimal.Decimal) BudgetStatus {
	if limit.IsZero() {
		return BudgetStatusExceeded
	}
	percentage := spent.Div(limit).Mul(decimal.NewFromInt(100))
	switch {
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return BudgetStatusExceeded
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return BudgetStatusWarning
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return BudgetStatusModerate
	default:
		return BudgetStatusGood
	}
}
