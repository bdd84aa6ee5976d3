// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
//
// The ledger is append-only. No method updates snapshot columns; MarkReversed
// touches only is_reversed and reversed_at, and only on a row where
// is_reversed is still false.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Append persists a new ledger entry.
func (r *ledgerRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel, err := model.LedgerEntryFromEntity(entry)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// LatestUnreversed returns the newest entry for userID with is_reversed false.
// The row is locked FOR UPDATE so that two concurrent reversals for the same
// user serialize on it; when this repository runs outside a transaction the
// lock clause degrades to a plain read.
func (r *ledgerRepository) LatestUnreversed(ctx context.Context, userID uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND is_reversed = ?", userID, false).
		Order("created_at DESC").
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoTransactionToReverse
		}
		return nil, result.Error
	}
	return entryModel.ToEntity()
}

// MarkReversed flips is_reversed false -> true and stamps reversed_at. The
// WHERE clause carries the is_reversed guard; zero affected rows means another
// reversal already claimed the entry.
func (r *ledgerRepository) MarkReversed(ctx context.Context, entryID uuid.UUID, reversedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("id = ? AND is_reversed = ?", entryID, false).
		Updates(map[string]any{
			"is_reversed": true,
			"reversed_at": &reversedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryAlreadyReversed
	}
	return nil
}

// History returns all entries for userID, newest first.
func (r *ledgerRepository) History(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entry, err := em.ToEntity()
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}
