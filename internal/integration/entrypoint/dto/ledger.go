// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// SnapshotResponse represents an expense snapshot inside a ledger entry.
type SnapshotResponse struct {
	ID       string   `json:"id"`
	Amount   string   `json:"amount"`
	Category string   `json:"category"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
	Notes    string   `json:"notes,omitempty"`
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	ID              string            `json:"id"`
	ExpenseID       *string           `json:"expense_id,omitempty"`
	TransactionType string            `json:"transaction_type"`
	OldData         *SnapshotResponse `json:"old_data,omitempty"`
	NewData         *SnapshotResponse `json:"new_data,omitempty"`
	IsReversed      bool              `json:"is_reversed"`
	ReversedAt      *time.Time        `json:"reversed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// HistoryResponse represents the response for the transaction history.
type HistoryResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Total   int                   `json:"total"`
}

// ReversalResponse represents the response for a successful reversal.
type ReversalResponse struct {
	Success       bool                `json:"success"`
	ReversedEntry LedgerEntryResponse `json:"reversed_entry"`
}

// ToLedgerEntryResponse converts a domain LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *entity.LedgerEntry) LedgerEntryResponse {
	var expenseID *string
	if e.ExpenseID != nil {
		id := e.ExpenseID.String()
		expenseID = &id
	}
	return LedgerEntryResponse{
		ID:              e.ID.String(),
		ExpenseID:       expenseID,
		TransactionType: string(e.TransactionType),
		OldData:         toSnapshotResponse(e.OldData),
		NewData:         toSnapshotResponse(e.NewData),
		IsReversed:      e.IsReversed,
		ReversedAt:      e.ReversedAt,
		CreatedAt:       e.CreatedAt,
	}
}

// ToHistoryResponse converts ledger entries to a HistoryResponse DTO.
func ToHistoryResponse(entries []*entity.LedgerEntry) HistoryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToLedgerEntryResponse(e)
	}
	return HistoryResponse{Entries: out, Total: len(out)}
}

func toSnapshotResponse(s *entity.ExpenseSnapshot) *SnapshotResponse {
	if s == nil {
		return nil
	}
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return &SnapshotResponse{
		ID:       s.ID.String(),
		Amount:   s.Amount.StringFixed(2),
		Category: s.Category,
		Date:     s.Date.Format("2006-01-02"),
		Tags:     tags,
		Notes:    s.Notes,
	}
}
