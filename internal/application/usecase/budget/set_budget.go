// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// SetBudgetInput represents the input for creating a budget.
type SetBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Limit    decimal.Decimal
}

// SetBudgetOutput represents the output of creating a budget.
type SetBudgetOutput struct {
	Budget *entity.Budget
}

// SetBudgetUseCase creates a per-category budget. One budget per category per
// user; a duplicate category is rejected.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository) *SetBudgetUseCase {
	return &SetBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget creation.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetCategory,
			"category must not be empty",
			domainerror.ErrEmptyBudgetCategory,
		)
	}
	if !input.Limit.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must be positive",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	_, err := uc.budgetRepo.FindByUserAndCategory(ctx, input.UserID, input.Category)
	if err == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			fmt.Sprintf("budget already exists for category %s", input.Category),
			domainerror.ErrBudgetAlreadyExists,
		)
	}
	if !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}

	budget := entity.NewBudget(input.UserID, input.Category, input.Limit)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &SetBudgetOutput{Budget: budget}, nil
}
