// Package bucket holds sliding-window counters for rate limiting.
package bucket

import (
	"context"
	"math"
	"time"

	"regform/internal/ratelimit/models"
)

// Store counts requests per key within a sliding window.
type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
	Reset(ctx context.Context, key string) error
}

func retryAfterSeconds(now, resetAt time.Time) int {
	secs := int(math.Ceil(resetAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
