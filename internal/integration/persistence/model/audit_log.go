// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// AuditLogModel represents the audit_logs table in the database.
type AuditLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the AuditLogModel.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// AuditLogFromEntity creates an AuditLogModel from a domain AuditLog entity.
func AuditLogFromEntity(log *entity.AuditLog) *AuditLogModel {
	return &AuditLogModel{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    string(log.Action),
		CreatedAt: log.CreatedAt,
	}
}
