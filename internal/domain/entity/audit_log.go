// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies an account-level event worth journaling.
type AuditAction string

const (
	AuditActionSignup      AuditAction = "SIGNUP"
	AuditActionLogin       AuditAction = "LOGIN"
	AuditActionLoginFailed AuditAction = "LOGIN_FAILED"
)

// AuditLog is an append-only record of an account event.
type AuditLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Action    AuditAction
	CreatedAt time.Time
}

// NewAuditLog creates a new AuditLog entity.
func NewAuditLog(userID uuid.UUID, action AuditAction) *AuditLog {
	return &AuditLog{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
}
