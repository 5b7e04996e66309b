package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gdugdh24/matrimony-backend/internal/matching"
)

const (
	generationKey = "recommendations:generation"
	keyPrefix     = "recommendations"
)

// RecommendationCache stores ranked lists per requester in Redis. A profile
// write anywhere can change every list, so invalidation bumps a generation
// number that is part of each key instead of scanning keys.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{client: client, ttl: ttl}
}

// Generation returns the current cache generation. Callers read it once
// before loading profiles and pass it to Get and Set, so a list computed
// before an invalidation is never stored under the newer generation.
func (c *RecommendationCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return gen, nil
}

func key(gen int64, userID int) string {
	return fmt.Sprintf("%s:%d:%d", keyPrefix, gen, userID)
}

// Get returns the list cached for gen and whether it was present.
func (c *RecommendationCache) Get(ctx context.Context, gen int64, userID int) ([]matching.ScoredProfile, bool, error) {
	data, err := c.client.Get(ctx, key(gen, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations: %w", err)
	}

	var results []matching.ScoredProfile
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	return results, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, gen int64, userID int, results []matching.ScoredProfile) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}
	if err := c.client.Set(ctx, key(gen, userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendations: %w", err)
	}
	return nil
}

// InvalidateAll makes every cached list unreachable. Old entries expire
// through their TTL.
func (c *RecommendationCache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate recommendations: %w", err)
	}
	return nil
}
