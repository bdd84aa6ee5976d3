// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// NotificationRepository records dispatched notifications so the periodic
// sweeps do not re-send the same alert.
type NotificationRepository interface {
	// Create records a dispatched notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// ExistsSince reports whether a notification of the given type (and
	// category, for overspend alerts) was already recorded for the user at or
	// after the cutoff.
	ExistsSince(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, category string, cutoff time.Time) (bool, error)
}

// NotificationSender delivers a notification payload to the user.
type NotificationSender interface {
	Send(ctx context.Context, user *entity.User, notification *entity.Notification) error
}
