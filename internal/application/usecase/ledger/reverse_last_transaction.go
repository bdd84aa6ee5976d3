// Package ledger contains transaction-ledger use cases: history reads and
// reversal of the most recent unreversed entry.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// ReverseLastTransactionInput represents the input for a reversal.
type ReverseLastTransactionInput struct {
	UserID uuid.UUID
}

// ReverseLastTransactionOutput carries the original, now-reversed entry.
type ReverseLastTransactionOutput struct {
	Success       bool
	ReversedEntry *entity.LedgerEntry
}

// ReverseLastTransactionUseCase undoes the user's most recent unreversed
// mutation. The flag flip, the inverse expense mutation and the reversal
// record are one unit of work: a failure anywhere rolls back everything,
// leaving the original entry unreversed and the expense store untouched.
type ReverseLastTransactionUseCase struct {
	uow        adapter.UnitOfWork
	scoreCache adapter.ScoreCache
}

// NewReverseLastTransactionUseCase creates a new ReverseLastTransactionUseCase instance.
func NewReverseLastTransactionUseCase(uow adapter.UnitOfWork, scoreCache adapter.ScoreCache) *ReverseLastTransactionUseCase {
	return &ReverseLastTransactionUseCase{
		uow:        uow,
		scoreCache: scoreCache,
	}
}

// Execute performs the reversal.
func (uc *ReverseLastTransactionUseCase) Execute(ctx context.Context, input ReverseLastTransactionInput) (*ReverseLastTransactionOutput, error) {
	var reversed *entity.LedgerEntry

	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.UnitOfWorkStores) error {
		entry, err := stores.Ledger.LatestUnreversed(ctx, input.UserID)
		if err != nil {
			return err
		}

		// Guarded flip: a concurrent reversal that already claimed this entry
		// makes MarkReversed report it, and the whole unit rolls back.
		now := time.Now().UTC()
		if err := stores.Ledger.MarkReversed(ctx, entry.ID, now); err != nil {
			return err
		}
		entry.IsReversed = true
		entry.ReversedAt = &now

		if err := uc.applyInverse(ctx, stores.Expenses, entry); err != nil {
			return err
		}

		if err := stores.Ledger.Append(ctx, entity.NewReversalEntry(entry)); err != nil {
			return fmt.Errorf("failed to append reversal entry: %w", err)
		}

		reversed = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateScore(ctx, uc.scoreCache, input.UserID)

	slog.Info("Reversed ledger entry",
		"user_id", input.UserID,
		"entry_id", reversed.ID,
		"transaction_type", reversed.TransactionType,
	)

	return &ReverseLastTransactionOutput{
		Success:       true,
		ReversedEntry: reversed,
	}, nil
}

// applyInverse applies the opposite of the journaled mutation to the expense
// store.
func (uc *ReverseLastTransactionUseCase) applyInverse(
	ctx context.Context,
	expenses adapter.ExpenseRepository,
	entry *entity.LedgerEntry,
) error {
	switch entry.TransactionType {
	case entity.TransactionTypeCreate:
		// Undo a create by deleting the expense. The row may have been removed
		// independently since; Delete tolerates that.
		if entry.ExpenseID != nil {
			if err := expenses.Delete(ctx, *entry.ExpenseID); err != nil {
				return fmt.Errorf("failed to delete expense for reversal: %w", err)
			}
		}
		return nil

	case entity.TransactionTypeUpdate:
		if entry.ExpenseID == nil || entry.OldData == nil {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidSnapshot,
				"update entry missing expense id or prior snapshot",
				domainerror.ErrInvalidSnapshot,
			)
		}
		expense, err := expenses.FindByID(ctx, *entry.ExpenseID, entry.UserID)
		if err != nil {
			return err
		}
		// Full snapshot restore, never a field merge.
		expense.Restore(entry.OldData)
		if err := expenses.Update(ctx, expense); err != nil {
			return fmt.Errorf("failed to restore expense for reversal: %w", err)
		}
		return nil

	case entity.TransactionTypeDelete:
		if entry.OldData == nil {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidSnapshot,
				"delete entry missing prior snapshot",
				domainerror.ErrInvalidSnapshot,
			)
		}
		// Re-create under a fresh identity; the original id is not recoverable.
		restored := entity.NewExpense(
			entry.UserID,
			entry.OldData.Amount,
			entry.OldData.Category,
			entry.OldData.Date,
			entry.OldData.Tags,
			entry.OldData.Notes,
		)
		if err := expenses.Create(ctx, restored); err != nil {
			return fmt.Errorf("failed to recreate expense for reversal: %w", err)
		}
		return nil

	default:
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidSnapshot,
			fmt.Sprintf("unknown transaction type %q", entry.TransactionType),
			domainerror.ErrInvalidSnapshot,
		)
	}
}

// invalidateScore drops the user's cached health score after a reversal.
func invalidateScore(ctx context.Context, cache adapter.ScoreCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate score cache", "user_id", userID, "error", err)
	}
}
