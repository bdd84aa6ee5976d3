// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create inserts a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByUserAndCategory retrieves the budget for a category, or domain
	// ErrBudgetNotFound if the user has none.
	FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.Budget, error)

	// Update overwrites the budget's limit.
	Update(ctx context.Context, budget *entity.Budget) error

	// FindAll retrieves every budget across all users. Used by the overspend
	// notification sweep.
	FindAll(ctx context.Context) ([]*entity.Budget, error)
}
