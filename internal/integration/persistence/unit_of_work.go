// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
)

// unitOfWork implements adapter.UnitOfWork on top of a gorm transaction.
// The repositories handed to fn are bound to the transaction, so an expense
// mutation and its ledger entry commit or roll back together.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work instance.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Execute runs fn inside a single database transaction. An error from fn
// rolls everything back and is returned unchanged.
func (u *unitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, stores adapter.UnitOfWorkStores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stores := adapter.UnitOfWorkStores{
			Expenses: NewExpenseRepository(tx),
			Ledger:   NewLedgerRepository(tx),
		}
		return fn(ctx, stores)
	})
}
