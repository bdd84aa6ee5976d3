// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// LedgerRepository defines the interface for the append-only transaction ledger.
//
// Entries are immutable once appended; the only mutation the interface allows
// is the guarded IsReversed flag flip via MarkReversed.
type LedgerRepository interface {
	// Append persists a new ledger entry. No existing record changes.
	Append(ctx context.Context, entry *entity.LedgerEntry) error

	// LatestUnreversed returns the most recently created entry for userID with
	// IsReversed false, or domain ErrNoTransactionToReverse if none exists.
	// Inside a UnitOfWork the row is selected FOR UPDATE so that concurrent
	// reversals for the same user serialize.
	LatestUnreversed(ctx context.Context, userID uuid.UUID) (*entity.LedgerEntry, error)

	// MarkReversed flips IsReversed false -> true and sets ReversedAt.
	// Returns domain ErrEntryAlreadyReversed when the guarded update matches
	// zero rows, i.e. a concurrent reversal won the race.
	MarkReversed(ctx context.Context, entryID uuid.UUID, reversedAt time.Time) error

	// History returns all entries for userID, newest first. The result is a
	// finite snapshot; callers re-query rather than stream.
	History(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error)
}
