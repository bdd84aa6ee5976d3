// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase handles expense deletion. The row removal and its
// DELETE ledger entry (carrying the final snapshot as OldData) commit in one
// unit of work.
type DeleteExpenseUseCase struct {
	uow        adapter.UnitOfWork
	scoreCache adapter.ScoreCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(uow adapter.UnitOfWork, scoreCache adapter.ScoreCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		uow:        uow,
		scoreCache: scoreCache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.UnitOfWorkStores) error {
		expense, err := stores.Expenses.FindByID(ctx, input.ExpenseID, input.UserID)
		if err != nil {
			return err
		}

		if err := stores.Expenses.Delete(ctx, expense.ID); err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}

		// ExpenseID still points at the removed row so the entry records which
		// identity was deleted; reversal re-creates under a fresh id.
		entry := entity.NewLedgerEntry(
			input.UserID,
			&expense.ID,
			entity.TransactionTypeDelete,
			expense.Snapshot(),
			nil,
		)
		if err := stores.Ledger.Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateScore(ctx, uc.scoreCache, input.UserID)

	return &DeleteExpenseOutput{Success: true}, nil
}
