// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationType identifies what triggered a notification.
type NotificationType string

const (
	NotificationTypeOverspend  NotificationType = "OVERSPEND"
	NotificationTypeInactivity NotificationType = "INACTIVITY"
)

// Notification is a dispatched (or to-be-dispatched) alert for a user.
// Category and OverspentAmount are set for OVERSPEND, DaysInactive for
// INACTIVITY.
type Notification struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Type            NotificationType
	Category        string
	OverspentAmount decimal.Decimal
	DaysInactive    int
	CreatedAt       time.Time
}

// NewOverspendNotification creates an overspend alert payload.
func NewOverspendNotification(userID uuid.UUID, category string, overspent decimal.Decimal) *Notification {
	return &Notification{
		ID:              uuid.New(),
		UserID:          userID,
		Type:            NotificationTypeOverspend,
		Category:        category,
		OverspentAmount: overspent,
		CreatedAt:       time.Now().UTC(),
	}
}

// NewInactivityNotification creates an inactivity alert payload.
func NewInactivityNotification(userID uuid.UUID, daysInactive int) *Notification {
	return &Notification{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         NotificationTypeInactivity,
		DaysInactive: daysInactive,
		CreatedAt:    time.Now().UTC(),
	}
}
