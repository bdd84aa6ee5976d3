// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ScoreSnapshot is a cached financial-health score.
type ScoreSnapshot struct {
	TotalScore         int `json:"totalScore"`
	BudgetAdherence    int `json:"budgetAdherence"`
	UsageFrequency     int `json:"usageFrequency"`
	TrackingDiscipline int `json:"trackingDiscipline"`
}

// ScoreCache caches the computed score per user. Every ledger-wrapped mutation
// and every reversal invalidates the owner's entry.
type ScoreCache interface {
	// Get returns the cached score, or (nil, nil) on a miss. Cache errors are
	// returned so callers can log them, but a caller treats any error as a miss.
	Get(ctx context.Context, userID uuid.UUID) (*ScoreSnapshot, error)

	// Set stores the score under the implementation's TTL.
	Set(ctx context.Context, userID uuid.UUID, score *ScoreSnapshot) error

	// Invalidate drops the user's cached score.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
