// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// AuditRepository defines the interface for the append-only account audit log.
type AuditRepository interface {
	// Append persists a new audit record.
	Append(ctx context.Context, log *entity.AuditLog) error
}
