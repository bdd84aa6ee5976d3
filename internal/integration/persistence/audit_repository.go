// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// auditRepository implements the adapter.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository instance.
func NewAuditRepository(db *gorm.DB) adapter.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// Append persists a new audit record.
func (r *auditRepository) Append(ctx context.Context, log *entity.AuditLog) error {
	result := r.db.WithContext(ctx).Create(model.AuditLogFromEntity(log))
	return result.Error
}
