// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create records a dispatched notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	result := r.db.WithContext(ctx).Create(model.NotificationFromEntity(notification))
	return result.Error
}

// ExistsSince reports whether an equivalent notification was already recorded
// at or after the cutoff. Category narrows the check for overspend alerts and
// is empty for inactivity alerts.
func (r *notificationRepository) ExistsSince(
	ctx context.Context,
	userID uuid.UUID,
	notificationType entity.NotificationType,
	category string,
	cutoff time.Time,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND type = ? AND created_at >= ?", userID, string(notificationType), cutoff)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
