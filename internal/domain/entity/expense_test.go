package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewExpense_Defaults(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	expense := NewExpense(userID, decimal.NewFromFloat(12.50), "", date, nil, "")

	if expense.Category != UncategorizedLabel {
		t.Errorf("empty category defaulted to %q, want %q", expense.Category, UncategorizedLabel)
	}
	if expense.Tags == nil {
		t.Error("nil tags should default to an empty slice")
	}
	if expense.ID == uuid.Nil {
		t.Error("expense was created without an id")
	}
	if expense.UserID != userID {
		t.Errorf("UserID = %s, want %s", expense.UserID, userID)
	}
}

func TestExpense_SnapshotRestore(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	expense := NewExpense(userID, decimal.NewFromFloat(50), "Food", date, []string{"lunch"}, "team lunch")

	before := expense.Snapshot()

	expense.Amount = decimal.NewFromFloat(75)
	expense.Category = "Entertainment"
	expense.Tags = append(expense.Tags, "movie")
	expense.Notes = "changed"

	if !before.Amount.Equal(decimal.NewFromFloat(50)) {
		t.Errorf("snapshot amount mutated to %s", before.Amount)
	}
	if len(before.Tags) != 1 || before.Tags[0] != "lunch" {
		t.Errorf("snapshot tags mutated: %v", before.Tags)
	}

	expense.Restore(before)

	if !expense.Amount.Equal(decimal.NewFromFloat(50)) {
		t.Errorf("restored amount = %s, want 50", expense.Amount)
	}
	if expense.Category != "Food" {
		t.Errorf("restored category = %q, want Food", expense.Category)
	}
	if expense.Notes != "team lunch" {
		t.Errorf("restored notes = %q, want original notes", expense.Notes)
	}
	if len(expense.Tags) != 1 || expense.Tags[0] != "lunch" {
		t.Errorf("restored tags = %v, want [lunch]", expense.Tags)
	}
	if expense.ID != before.ID || expense.UserID != userID {
		t.Error("restore must not change identity or ownership")
	}
}

func TestExpense_RestoreCopiesTags(t *testing.T) {
	expense := NewExpense(uuid.New(), decimal.NewFromInt(10), "Food", time.Now().UTC(), []string{"a"}, "")
	snapshot := expense.Snapshot()

	expense.Restore(snapshot)
	snapshot.Tags[0] = "mutated"

	if expense.Tags[0] != "a" {
		t.Error("restored expense shares the snapshot's tag slice")
	}
}
