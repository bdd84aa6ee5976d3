package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	usecase "github.com/spendwise/backend/internal/application/usecase/notification"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepo) Create(ctx context.Context, b *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}
func (f *fakeBudgetRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return f.budgets, nil
}
func (f *fakeBudgetRepo) FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}
func (f *fakeBudgetRepo) Update(ctx context.Context, b *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	return f.budgets, nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}
func (f *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
func (f *fakeExpenseRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Expense, error) {
	return f.FindByFilter(ctx, adapter.ExpenseFilter{UserID: userID, StartDate: &start, EndDate: &end})
}
func (f *fakeExpenseRepo) Update(ctx context.Context, e *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) FindInactiveSince(ctx context.Context, cutoff time.Time) ([]*entity.User, error) {
	return nil, nil
}

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	f.created = append(f.created, n)
	return nil
}
func (f *fakeNotificationRepo) ExistsSince(ctx context.Context, userID uuid.UUID, t entity.NotificationType, category string, cutoff time.Time) (bool, error) {
	for _, n := range f.created {
		if n.UserID == userID && n.Type == t && n.Category == category && !n.CreatedAt.Before(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

func newOverspendFixture(t *testing.T) (*Worker, *MockSender, *fakeNotificationRepo) {
	t.Helper()

	userID := uuid.New()
	user := entity.NewUser("gabi@spendwise.dev", "Gabi", "hash")
	user.ID = userID

	budgets := &fakeBudgetRepo{budgets: []*entity.Budget{
		entity.NewBudget(userID, "Food", decimal.NewFromInt(100)),
	}}
	expenses := &fakeExpenseRepo{expenses: []*entity.Expense{
		entity.NewExpense(userID, decimal.NewFromInt(150), "Food", time.Now().UTC(), nil, ""),
	}}
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{userID: user}}
	store := &fakeNotificationRepo{}
	sender := NewMockSender()

	worker := NewWorker(
		usecase.NewCheckOverspendingUseCase(budgets, expenses),
		usecase.NewCheckInactivityUseCase(users),
		users,
		store,
		sender,
		DefaultWorkerConfig(),
	)
	return worker, sender, store
}

func TestWorker_SweepSendsOverspendAlert(t *testing.T) {
	worker, sender, store := newOverspendFixture(t)

	worker.Sweep(context.Background())

	if len(sender.Sent) != 1 {
		t.Fatalf("expected 1 alert sent, got %d", len(sender.Sent))
	}
	alert := sender.Sent[0]
	if alert.Type != entity.NotificationTypeOverspend {
		t.Errorf("expected overspend alert, got %s", alert.Type)
	}
	if alert.Category != "Food" {
		t.Errorf("expected Food category, got %q", alert.Category)
	}
	if !alert.OverspentAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected overspend of 50, got %s", alert.OverspentAmount)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected alert recorded for dedup, got %d records", len(store.created))
	}
}

func TestWorker_SweepDeduplicatesWithinMonth(t *testing.T) {
	worker, sender, _ := newOverspendFixture(t)

	worker.Sweep(context.Background())
	worker.Sweep(context.Background())

	if len(sender.Sent) != 1 {
		t.Fatalf("expected duplicate sweep to be suppressed, got %d sends", len(sender.Sent))
	}
}

func TestWorker_SweepSkipsFailedSend(t *testing.T) {
	worker, sender, store := newOverspendFixture(t)
	sender.ShouldFail = true

	worker.Sweep(context.Background())

	if len(store.created) != 0 {
		t.Fatalf("failed sends must not be recorded, got %d records", len(store.created))
	}
}

func TestWorker_SweepHonorsNotificationPreference(t *testing.T) {
	worker, sender, _ := newOverspendFixture(t)

	users := worker.userRepo.(*fakeUserRepo)
	for _, u := range users.users {
		u.EmailNotifications = false
	}

	worker.Sweep(context.Background())

	if len(sender.Sent) != 0 {
		t.Fatalf("expected no sends for opted-out user, got %d", len(sender.Sent))
	}
}
