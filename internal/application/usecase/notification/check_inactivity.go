// Package notification contains the overspend and inactivity sweep use cases.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// InactivityDays is how many expense-free days trigger an inactivity alert.
const InactivityDays = 5

// CheckInactivityUseCase finds users who logged no expense in the last
// InactivityDays days and emits an inactivity payload per user.
type CheckInactivityUseCase struct {
	userRepo adapter.UserRepository
	now      func() time.Time
}

// NewCheckInactivityUseCase creates a new CheckInactivityUseCase instance.
func NewCheckInactivityUseCase(userRepo adapter.UserRepository) *CheckInactivityUseCase {
	return &CheckInactivityUseCase{
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the use case's clock. Test hook.
func (uc *CheckInactivityUseCase) WithClock(now func() time.Time) *CheckInactivityUseCase {
	uc.now = now
	return uc
}

// Execute returns one payload per inactive user.
func (uc *CheckInactivityUseCase) Execute(ctx context.Context) ([]*entity.Notification, error) {
	cutoff := uc.now().AddDate(0, 0, -InactivityDays)

	users, err := uc.userRepo.FindInactiveSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to find inactive users: %w", err)
	}

	notifications := make([]*entity.Notification, 0, len(users))
	for _, user := range users {
		notifications = append(notifications, entity.NewInactivityNotification(user.ID, InactivityDays))
	}
	return notifications, nil
}
