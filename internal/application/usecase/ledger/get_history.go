// Package ledger contains transaction-ledger use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// GetHistoryInput represents the input for a history read.
type GetHistoryInput struct {
	UserID uuid.UUID
}

// GetHistoryOutput carries the user's ledger entries, newest first.
type GetHistoryOutput struct {
	Entries []*entity.LedgerEntry
}

// GetHistoryUseCase reads a user's full transaction history.
type GetHistoryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(ledgerRepo adapter.LedgerRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{ledgerRepo: ledgerRepo}
}

// Execute retrieves the history.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	entries, err := uc.ledgerRepo.History(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction history: %w", err)
	}
	return &GetHistoryOutput{Entries: entries}, nil
}
