// Package cache implements Redis-backed caches for computed read models.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spendwise/backend/internal/application/adapter"
)

// defaultScoreTTL bounds staleness for score entries that survive
// invalidation, e.g. after a write on another instance failed to reach Redis.
const defaultScoreTTL = time.Hour

// scoreCache implements the adapter.ScoreCache interface on Redis.
type scoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache creates a new Redis score cache instance.
func NewScoreCache(client *redis.Client) adapter.ScoreCache {
	return &scoreCache{
		client: client,
		ttl:    defaultScoreTTL,
	}
}

// Get returns the cached score for the user, or (nil, nil) on a miss.
func (c *scoreCache) Get(ctx context.Context, userID uuid.UUID) (*adapter.ScoreSnapshot, error) {
	raw, err := c.client.Get(ctx, scoreKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read score cache: %w", err)
	}

	var snapshot adapter.ScoreSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cached score: %w", err)
	}
	return &snapshot, nil
}

// Set stores the score under the cache TTL.
func (c *scoreCache) Set(ctx context.Context, userID uuid.UUID, score *adapter.ScoreSnapshot) error {
	raw, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}
	if err := c.client.Set(ctx, scoreKey(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write score cache: %w", err)
	}
	return nil
}

// Invalidate drops the user's cached score.
func (c *scoreCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, scoreKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate score cache: %w", err)
	}
	return nil
}

func scoreKey(userID uuid.UUID) string {
	return "score:" + userID.String()
}
