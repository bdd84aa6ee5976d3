package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spendwise/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) adapter.ScoreCache {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	return NewScoreCache(client)
}

func TestScoreCache_GetMiss(t *testing.T) {
	cache := newTestCache(t)

	snapshot, err := cache.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot != nil {
		t.Fatalf("expected nil snapshot on miss, got %+v", snapshot)
	}
}

func TestScoreCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	userID := uuid.New()

	want := &adapter.ScoreSnapshot{
		TotalScore:         72,
		BudgetAdherence:    22,
		UsageFrequency:     15,
		TrackingDiscipline: 35,
	}
	if err := cache.Set(context.Background(), userID, want); err != nil {
		t.Fatalf("failed to set score: %v", err)
	}

	got, err := cache.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cached snapshot")
	}
	if *got != *want {
		t.Fatalf("cached snapshot mismatch: got %+v, want %+v", got, want)
	}
}

func TestScoreCache_Invalidate(t *testing.T) {
	cache := newTestCache(t)
	userID := uuid.New()

	if err := cache.Set(context.Background(), userID, &adapter.ScoreSnapshot{TotalScore: 50}); err != nil {
		t.Fatalf("failed to set score: %v", err)
	}
	if err := cache.Invalidate(context.Background(), userID); err != nil {
		t.Fatalf("failed to invalidate: %v", err)
	}

	snapshot, err := cache.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot != nil {
		t.Fatalf("expected miss after invalidation, got %+v", snapshot)
	}
}

func TestScoreCache_InvalidateMissingKey(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.Invalidate(context.Background(), uuid.New()); err != nil {
		t.Fatalf("invalidating an absent key should succeed, got %v", err)
	}
}
