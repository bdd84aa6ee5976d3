package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

func TestUnitOfWork_CommitsExpenseAndLedgerEntryTogether(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	uow := NewUnitOfWork(db)

	expense := entity.NewExpense(userID, decimal.NewFromFloat(25.00), "Food",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil, "groceries")

	err := uow.Execute(context.Background(), func(ctx context.Context, stores adapter.UnitOfWorkStores) error {
		if err := stores.Expenses.Create(ctx, expense); err != nil {
			return err
		}
		return stores.Ledger.Append(ctx, entity.NewLedgerEntry(
			userID, &expense.ID, entity.TransactionTypeCreate, nil, expense.Snapshot()))
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if _, err := NewExpenseRepository(db).FindByID(context.Background(), expense.ID, userID); err != nil {
		t.Errorf("expense not found after commit: %v", err)
	}
	entries, err := NewLedgerRepository(db).History(context.Background(), userID)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("ledger has %d entries after commit, want 1", len(entries))
	}
}

func TestUnitOfWork_RollsBackBothWritesOnError(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	uow := NewUnitOfWork(db)

	expense := entity.NewExpense(userID, decimal.NewFromFloat(25.00), "Food",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil, "")
	boom := errors.New("ledger write refused")

	err := uow.Execute(context.Background(), func(ctx context.Context, stores adapter.UnitOfWorkStores) error {
		if err := stores.Expenses.Create(ctx, expense); err != nil {
			return err
		}
		if err := stores.Ledger.Append(ctx, entity.NewLedgerEntry(
			userID, &expense.ID, entity.TransactionTypeCreate, nil, expense.Snapshot())); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Execute = %v, want the error returned by fn", err)
	}

	// Neither write may survive the rollback
	expenses, err := NewExpenseRepository(db).FindByFilter(context.Background(), adapter.ExpenseFilter{UserID: userID})
	if err != nil {
		t.Fatalf("FindByFilter returned error: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("found %d expenses after rollback, want 0", len(expenses))
	}
	entries, err := NewLedgerRepository(db).History(context.Background(), userID)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("found %d ledger entries after rollback, want 0", len(entries))
	}
}
