// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
// One row per dispatched alert; the sweeps query it for deduplication.
type NotificationModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_notification_dedup"`
	Type            string          `gorm:"type:varchar(20);not null;index:idx_notification_dedup"`
	Category        string          `gorm:"type:varchar(100);index:idx_notification_dedup"`
	OverspentAmount decimal.Decimal `gorm:"type:decimal(15,2)"`
	DaysInactive    int             `gorm:"type:integer"`
	CreatedAt       time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:              m.ID,
		UserID:          m.UserID,
		Type:            entity.NotificationType(m.Type),
		Category:        m.Category,
		OverspentAmount: m.OverspentAmount,
		DaysInactive:    m.DaysInactive,
		CreatedAt:       m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(n *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:              n.ID,
		UserID:          n.UserID,
		Type:            string(n.Type),
		Category:        n.Category,
		OverspentAmount: n.OverspentAmount,
		DaysInactive:    n.DaysInactive,
		CreatedAt:       n.CreatedAt,
	}
}
