// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/application/classifier"
	"github.com/spendwise/backend/internal/domain/entity"
)

// UpdateExpenseInput represents the input for expense updates. Nil pointer
// fields are left unchanged; Tags nil means unchanged, empty slice clears.
type UpdateExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
	Amount    *decimal.Decimal
	Category  *string
	Date      *time.Time
	Tags      []string
	Notes     *string
}

// UpdateExpenseOutput represents the output of expense updates.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense updates. The row update and its UPDATE
// ledger entry (carrying both before and after snapshots) commit in one unit
// of work.
type UpdateExpenseUseCase struct {
	uow        adapter.UnitOfWork
	classifier *classifier.Classifier
	scoreCache adapter.ScoreCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	uow adapter.UnitOfWork,
	c *classifier.Classifier,
	scoreCache adapter.ScoreCache,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		uow:        uow,
		classifier: c,
		scoreCache: scoreCache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
	}
	if input.Notes != nil {
		if err := validateNotes(*input.Notes); err != nil {
			return nil, err
		}
	}

	var updated *entity.Expense

	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.UnitOfWorkStores) error {
		expense, err := stores.Expenses.FindByID(ctx, input.ExpenseID, input.UserID)
		if err != nil {
			return err
		}

		oldSnapshot := expense.Snapshot()

		if input.Amount != nil {
			expense.Amount = *input.Amount
		}
		if input.Date != nil {
			expense.Date = *input.Date
		}
		if input.Tags != nil {
			expense.Tags = input.Tags
		}
		if input.Notes != nil {
			expense.Notes = *input.Notes
		}
		if input.Category != nil {
			expense.Category = *input.Category
		} else if input.Notes != nil && *input.Notes != "" {
			// New notes without an explicit category re-run classification.
			expense.Category = uc.classifier.Classify(*input.Notes)
		}
		expense.UpdatedAt = time.Now().UTC()

		if err := stores.Expenses.Update(ctx, expense); err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}

		entry := entity.NewLedgerEntry(
			input.UserID,
			&expense.ID,
			entity.TransactionTypeUpdate,
			oldSnapshot,
			expense.Snapshot(),
		)
		if err := stores.Ledger.Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		updated = expense
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateScore(ctx, uc.scoreCache, input.UserID)

	return &UpdateExpenseOutput{Expense: toExpenseOutput(updated)}, nil
}
