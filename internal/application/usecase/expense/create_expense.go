// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/application/classifier"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Category string // Optional; classified from Notes when empty
	Date     time.Time
	Tags     []string
	Notes    string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation. The insert and its CREATE
// ledger entry commit in one unit of work.
type CreateExpenseUseCase struct {
	uow        adapter.UnitOfWork
	classifier *classifier.Classifier
	scoreCache adapter.ScoreCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	uow adapter.UnitOfWork,
	c *classifier.Classifier,
	scoreCache adapter.ScoreCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		uow:        uow,
		classifier: c,
		scoreCache: scoreCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	// When the caller supplied no category, fall back to classifying the notes.
	category := input.Category
	if category == "" && input.Notes != "" {
		category = uc.classifier.Classify(input.Notes)
	}

	expense := entity.NewExpense(input.UserID, input.Amount, category, input.Date, input.Tags, input.Notes)

	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.UnitOfWorkStores) error {
		if err := stores.Expenses.Create(ctx, expense); err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}

		entry := entity.NewLedgerEntry(
			input.UserID,
			&expense.ID,
			entity.TransactionTypeCreate,
			nil,
			expense.Snapshot(),
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

	return &CreateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	return nil
}

func validateNotes(notes string) error {
	if len(notes) > MaxNotesLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	return nil
}

func toExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:        e.ID,
		UserID:    e.UserID,
		Amount:    e.Amount,
		Category:  e.Category,
		Date:      e.Date,
		Tags:      e.Tags,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// invalidateScore drops the user's cached health score after a mutation.
// Cache failures are logged and never fail the operation.
func invalidateScore(ctx context.Context, cache adapter.ScoreCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate score cache", "user_id", userID, "error", err)
	}
}
