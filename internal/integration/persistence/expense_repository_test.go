package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func seedExpense(t *testing.T, repo adapter.ExpenseRepository, userID uuid.UUID, category string, date time.Time, tags []string) *entity.Expense {
	t.Helper()

	expense := entity.NewExpense(userID, decimal.NewFromFloat(12.34), category, date, tags, "")
	if err := repo.Create(context.Background(), expense); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}
	return expense
}

func TestExpenseRepository_FindByIDScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)
	other := seedUser(t, db)
	repo := NewExpenseRepository(db)

	expense := seedExpense(t, repo, owner, "Food", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil)

	if _, err := repo.FindByID(context.Background(), expense.ID, owner); err != nil {
		t.Errorf("FindByID for owner returned error: %v", err)
	}

	// A foreign row must look identical to a missing one
	_, err := repo.FindByID(context.Background(), expense.ID, other)
	if !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("FindByID for other user = %v, want ErrExpenseNotFound", err)
	}
}

func TestExpenseRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewExpenseRepository(db)

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	seedExpense(t, repo, userID, "Food", jan, []string{"lunch"})
	febExpense := seedExpense(t, repo, userID, "Food", feb, []string{"lunch", "work"})
	seedExpense(t, repo, userID, "Transportation", mar, nil)

	t.Run("date range", func(t *testing.T) {
		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		got, err := repo.FindByFilter(context.Background(), adapter.ExpenseFilter{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("FindByFilter returned error: %v", err)
		}
		if len(got) != 1 || got[0].ID != febExpense.ID {
			t.Errorf("date range filter returned %d expenses, want only the February one", len(got))
		}
	})

	t.Run("category", func(t *testing.T) {
		got, err := repo.FindByFilter(context.Background(), adapter.ExpenseFilter{
			UserID:   userID,
			Category: "Food",
		})
		if err != nil {
			t.Fatalf("FindByFilter returned error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("category filter returned %d expenses, want 2", len(got))
		}
	})

	t.Run("tags require every listed tag", func(t *testing.T) {
		got, err := repo.FindByFilter(context.Background(), adapter.ExpenseFilter{
			UserID: userID,
			Tags:   []string{"lunch", "work"},
		})
		if err != nil {
			t.Fatalf("FindByFilter returned error: %v", err)
		}
		if len(got) != 1 || got[0].ID != febExpense.ID {
			t.Errorf("tag filter returned %d expenses, want only the one carrying both tags", len(got))
		}
	})

	t.Run("newest date first", func(t *testing.T) {
		got, err := repo.FindByFilter(context.Background(), adapter.ExpenseFilter{UserID: userID})
		if err != nil {
			t.Fatalf("FindByFilter returned error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("unfiltered list returned %d expenses, want 3", len(got))
		}
		if !got[0].Date.Equal(mar) || !got[2].Date.Equal(jan) {
			t.Errorf("expenses not ordered newest first: %v, %v, %v", got[0].Date, got[1].Date, got[2].Date)
		}
	})
}

func TestExpenseRepository_DeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewExpenseRepository(db)

	expense := seedExpense(t, repo, userID, "Food", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil)

	if err := repo.Delete(context.Background(), expense.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	// Reversing a CREATE deletes a row that may already be gone
	if err := repo.Delete(context.Background(), expense.ID); err != nil {
		t.Errorf("Delete of absent row returned error: %v", err)
	}
}

func TestExpenseRepository_UpdateOverwritesFields(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewExpenseRepository(db)

	expense := seedExpense(t, repo, userID, "Food", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), []string{"lunch"})

	expense.Amount = decimal.NewFromFloat(99.99)
	expense.Category = "Entertainment"
	expense.Tags = []string{"cinema"}
	expense.Notes = "movie night"
	if err := repo.Update(context.Background(), expense); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := repo.FindByID(context.Background(), expense.ID, userID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !got.Amount.Equal(decimal.NewFromFloat(99.99)) {
		t.Errorf("Amount = %s, want 99.99", got.Amount)
	}
	if got.Category != "Entertainment" {
		t.Errorf("Category = %q, want Entertainment", got.Category)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "cinema" {
		t.Errorf("Tags = %v, want [cinema]", got.Tags)
	}
}
