package usecase

import (
	"context"
	"time"
)

// RecommendCache is the slice of the cache the recommendation path uses.
// Implementations must treat an unavailable backend as a miss, never as a
// request failure.
type RecommendCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// CacheInvalidator drops cached recommendation responses after the
// catalog they were computed from is replaced.
type CacheInvalidator interface {
	InvalidateRecommendations(ctx context.Context) error
}
