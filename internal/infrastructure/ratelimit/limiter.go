// Package ratelimit throttles request rates per client key using redis.
package ratelimit

import (
	"context"
	"time"
)

// Limits holds the request budget per window. A zero value disables that
// window.
type Limits struct {
	PerMinute int
	PerHour   int
}

// Limiter decides whether a keyed request fits within the configured
// budget.
type Limiter interface {
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	Used(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
