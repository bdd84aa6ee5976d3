package ledger

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

// In-memory fakes. Transactional rollback is exercised against the real
// database in the persistence package; these cover the reversal semantics.

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	copied := *expense
	f.expenses[expense.ID] = &copied
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	expense, ok := f.expenses[id]
	if !ok || expense.UserID != userID {
		return nil, domainerror.ErrExpenseNotFound
	}
	copied := *expense
	return &copied, nil
}

func (f *fakeExpenseRepo) FindByFilter(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.UserID == filter.UserID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Expense, error) {
	return f.FindByFilter(ctx, adapter.ExpenseFilter{UserID: userID, StartDate: &start, EndDate: &end})
}

func (f *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	copied := *expense
	f.expenses[expense.ID] = &copied
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (f *fakeLedgerRepo) Append(_ context.Context, entry *entity.LedgerEntry) error {
	copied := *entry
	f.entries = append(f.entries, &copied)
	return nil
}

func (f *fakeLedgerRepo) LatestUnreversed(_ context.Context, userID uuid.UUID) (*entity.LedgerEntry, error) {
	var latest *entity.LedgerEntry
	for _, e := range f.entries {
		if e.UserID != userID || e.IsReversed {
			continue
		}
		if latest == nil || e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	if latest == nil {
		return nil, domainerror.ErrNoTransactionToReverse
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeLedgerRepo) MarkReversed(_ context.Context, entryID uuid.UUID, reversedAt time.Time) error {
	for _, e := range f.entries {
		if e.ID == entryID && !e.IsReversed {
			e.IsReversed = true
			at := reversedAt
			e.ReversedAt = &at
			return nil
		}
	}
	return domainerror.ErrEntryAlreadyReversed
}

func (f *fakeLedgerRepo) History(_ context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeUnitOfWork struct {
	stores adapter.UnitOfWorkStores
}

func (f *fakeUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, stores adapter.UnitOfWorkStores) error) error {
	return fn(ctx, f.stores)
}

type fakeScoreCache struct {
	invalidated []uuid.UUID
}

func (f *fakeScoreCache) Get(context.Context, uuid.UUID) (*adapter.ScoreSnapshot, error) {
	return nil, nil
}

func (f *fakeScoreCache) Set(context.Context, uuid.UUID, *adapter.ScoreSnapshot) error {
	return nil
}

func (f *fakeScoreCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	f.invalidated = append(f.invalidated, userID)
	return nil
}

type reversalFixture struct {
	useCase  *ReverseLastTransactionUseCase
	expenses *fakeExpenseRepo
	ledger   *fakeLedgerRepo
	cache    *fakeScoreCache
	userID   uuid.UUID
}

func newReversalFixture() *reversalFixture {
	expenses := newFakeExpenseRepo()
	ledger := &fakeLedgerRepo{}
	cache := &fakeScoreCache{}
	uow := &fakeUnitOfWork{stores: adapter.UnitOfWorkStores{Expenses: expenses, Ledger: ledger}}

	return &reversalFixture{
		useCase:  NewReverseLastTransactionUseCase(uow, cache),
		expenses: expenses,
		ledger:   ledger,
		cache:    cache,
		userID:   uuid.New(),
	}
}

func TestReverseLastTransaction_UndoesCreateByDeleting(t *testing.T) {
	f := newReversalFixture()

	expense := entity.NewExpense(f.userID, decimal.NewFromFloat(30.00), "Food",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil, "")
	_ = f.expenses.Create(context.Background(), expense)
	_ = f.ledger.Append(context.Background(), entity.NewLedgerEntry(
		f.userID, &expense.ID, entity.TransactionTypeCreate, nil, expense.Snapshot()))

	output, err := f.useCase.Execute(context.Background(), ReverseLastTransactionInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !output.Success {
		t.Error("output.Success = false, want true")
	}
	if output.ReversedEntry.TransactionType != entity.TransactionTypeCreate {
		t.Errorf("ReversedEntry.TransactionType = %s, want CREATE", output.ReversedEntry.TransactionType)
	}

	if _, ok := f.expenses.expenses[expense.ID]; ok {
		t.Error("expense still present after reversing its CREATE")
	}
}

func TestReverseLastTransaction_UndoesUpdateByRestoringSnapshot(t *testing.T) {
	f := newReversalFixture()

	expense := entity.NewExpense(f.userID, decimal.NewFromFloat(30.00), "Food",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), []string{"lunch"}, "before")
	_ = f.expenses.Create(context.Background(), expense)
	before := expense.Snapshot()

	expense.Amount = decimal.NewFromFloat(99.00)
	expense.Category = "Entertainment"
	expense.Notes = "after"
	_ = f.expenses.Update(context.Background(), expense)
	_ = f.ledger.Append(context.Background(), entity.NewLedgerEntry(
		f.userID, &expense.ID, entity.TransactionTypeUpdate, before, expense.Snapshot()))

	if _, err := f.useCase.Execute(context.Background(), ReverseLastTransactionInput{UserID: f.userID}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	restored := f.expenses.expenses[expense.ID]
	if !restored.Amount.Equal(decimal.NewFromFloat(30.00)) {
		t.Errorf("Amount = %s, want the pre-update 30.00", restored.Amount)
	}
	if restored.Category != "Food" {
		t.Errorf("Category = %q, want the pre-update Food", restored.Category)
	}
	if restored.Notes != "before" {
		t.Errorf("Notes = %q, want the pre-update notes", restored.Notes)
	}
	if restored.ID != expense.ID {
		t.Error("restore changed the expense identity")
	}
}

func TestReverseLastTransaction_UndoesDeleteByRecreating(t *testing.T) {
	f := newReversalFixture()

	expense := entity.NewExpense(f.userID, decimal.NewFromFloat(55.50), "Shopping",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), []string{"gift"}, "present")
	snapshot := expense.Snapshot()
	_ = f.ledger.Append(context.Background(), entity.NewLedgerEntry(
		f.userID, &expense.ID, entity.TransactionTypeDelete, snapshot, nil))

	if _, err := f.useCase.Execute(context.Background(), ReverseLastTransactionInput{UserID: f.userID}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(f.expenses.expenses) != 1 {
		t.Fatalf("expense store has %d rows after reversing a DELETE, want 1", len(f.expenses.expenses))
	}
	for id, recreated := range f.expenses.expenses {
		// Recreated under a fresh identity, with the journaled field values
		if id == expense.ID {
			t.Error("recreated expense reuses the deleted id, want a fresh one")
		}
		if !recreated.Amount.Equal(snapshot.Amount) {
			t.Errorf("Amount = %s, want %s", recreated.Amount, snapshot.Amount)
		}
		if recreated.Category != snapshot.Category {
			t.Errorf("Category = %q, want %q", recreated.Category, snapshot.Category)
		}
		if recreated.Notes != snapshot.Notes {
			t.Errorf("Notes = %q, want %q", recreated.Notes, snapshot.Notes)
		}
	}
}

func TestReverseLastTransaction_AppendsReversalRecordBornReversed(t *testing.T) {
	f := newReversalFixture()

	expense := entity.NewExpense(f.userID, decimal.NewFromFloat(10.00), "Food",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil, "")
	_ = f.expenses.Create(context.Background(), expense)
	_ = f.ledger.Append(context.Background(), entity.NewLedgerEntry(
		f.userID, &expense.ID, entity.TransactionTypeCreate, nil, expense.Snapshot()))

	if _, err := f.useCase.Execute(context.Background(), ReverseLastTransactionInput{UserID: f.userID}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(f.ledger.entries) != 2 {
		t.Fatalf("ledger has %d entries, want original plus reversal record", len(f.ledger.entries))
	}
	for _, e := range f.ledger.entries {
		if !e.IsReversed {
			t.Errorf("entry %s is not reversed; both the original and the reversal record must be", e.ID)
		}
	}

	// A second reversal finds nothing left to undo
	_, err := f.useCase.Execute(context.Background(), ReverseLastTransactionInput{UserID: f.userID})
	if !errors.Is(err, domainerror.ErrNoTransactionToReverse) {
		t.Errorf("second Execute = %v, want ErrNoTransactionToReverse", err)
	}
}

func TestReverseLastTransaction_EmptyLedger(t *testing.T) {
	f := newReversalFixture()

	_, err := f.useCase.Execute(context.Background(), ReverseLastTransactionInput{UserID: f.userID})
	if !errors.Is(err, domainerror.ErrNoTransactionToReverse) {
		t.Errorf("Execute on empty ledger = %v, want ErrNoTransactionToReverse", err)
	}
	if len(f.cache.invalidated) != 0 {
		t.Error("score cache invalidated although nothing was reversed")
	}
}

func TestReverseLastTransaction_InvalidatesScoreCache(t *testing.T) {
	f := newReversalFixture()

	expense := entity.NewExpense(f.userID, decimal.NewFromFloat(10.00), "Food",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil, "")
	_ = f.expenses.Create(context.Background(), expense)
	_ = f.ledger.Append(context.Background(), entity.NewLedgerEntry(
		f.userID, &expense.ID, entity.TransactionTypeCreate, nil, expense.Snapshot()))

	if _, err := f.useCase.Execute(context.Background(), ReverseLastTransactionInput{UserID: f.userID}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(f.cache.invalidated) != 1 || f.cache.invalidated[0] != f.userID {
		t.Errorf("score cache invalidations = %v, want exactly the reversing user", f.cache.invalidated)
	}
}

func TestReverseLastTransaction_UpdateEntryWithoutSnapshotFails(t *testing.T) {
	f := newReversalFixture()

	expenseID := uuid.New()
	entry := entity.NewLedgerEntry(f.userID, &expenseID, entity.TransactionTypeUpdate, nil, &entity.ExpenseSnapshot{ID: expenseID})
	_ = f.ledger.Append(context.Background(), entry)

	_, err := f.useCase.Execute(context.Background(), ReverseLastTransactionInput{UserID: f.userID})
	if !errors.Is(err, domainerror.ErrInvalidSnapshot) {
		t.Errorf("Execute = %v, want ErrInvalidSnapshot", err)
	}
}
