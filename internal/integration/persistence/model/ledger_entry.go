// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
// Rows are append-only; the only permitted update is the guarded
// is_reversed/reversed_at flip performed by the repository.
type LedgerEntryModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_ledger_user_unreversed"`
	ExpenseID       *uuid.UUID `gorm:"type:uuid;index"`
	TransactionType string     `gorm:"type:varchar(10);not null"`
	OldData         []byte     `gorm:"type:jsonb"`
	NewData         []byte     `gorm:"type:jsonb"`
	IsReversed      bool       `gorm:"not null;default:false;index:idx_ledger_user_unreversed"`
	ReversedAt      *time.Time `gorm:"type:timestamp"`
	CreatedAt       time.Time  `gorm:"not null;index"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() (*entity.LedgerEntry, error) {
	oldData, err := unmarshalSnapshot(m.OldData)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %s: invalid old_data: %w", m.ID, err)
	}
	newData, err := unmarshalSnapshot(m.NewData)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %s: invalid new_data: %w", m.ID, err)
	}

	return &entity.LedgerEntry{
		ID:              m.ID,
		UserID:          m.UserID,
		ExpenseID:       m.ExpenseID,
		TransactionType: entity.TransactionType(m.TransactionType),
		OldData:         oldData,
		NewData:         newData,
		IsReversed:      m.IsReversed,
		ReversedAt:      m.ReversedAt,
		CreatedAt:       m.CreatedAt,
	}, nil
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) (*LedgerEntryModel, error) {
	oldData, err := marshalSnapshot(entry.OldData)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %s: cannot encode old_data: %w", entry.ID, err)
	}
	newData, err := marshalSnapshot(entry.NewData)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %s: cannot encode new_data: %w", entry.ID, err)
	}

	return &LedgerEntryModel{
		ID:              entry.ID,
		UserID:          entry.UserID,
		ExpenseID:       entry.ExpenseID,
		TransactionType: string(entry.TransactionType),
		OldData:         oldData,
		NewData:         newData,
		IsReversed:      entry.IsReversed,
		ReversedAt:      entry.ReversedAt,
		CreatedAt:       entry.CreatedAt,
	}, nil
}

func marshalSnapshot(s *entity.ExpenseSnapshot) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func unmarshalSnapshot(raw []byte) (*entity.ExpenseSnapshot, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var s entity.ExpenseSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
