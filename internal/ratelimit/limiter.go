// Package ratelimit bounds contact submissions per caller address using
// fixed windows. Counter state lives behind a Store so a single process can
// use plain memory while multiple replicas can share a Redis budget.
package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Store atomically increments the counter for key inside the current fixed
// window and returns the new count. Implementations must make
// increment-and-read a single indivisible operation per key so two concurrent
// calls cannot both observe "under limit" at the boundary.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Limiter admits at most Max calls per key per window.
type Limiter struct {
	store  Store
	max    int
	window time.Duration
	logger *zap.Logger
}

// NewLimiter builds a limiter over the given store.
func NewLimiter(store Store, max int, window time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{store: store, max: max, window: window, logger: logger}
}

// Allow reports whether the call for key is admitted. A store failure fails
// open: losing one counter beat is preferable to rejecting submissions.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	count, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		l.logger.Warn("rate limit store unavailable, admitting request",
			zap.String("key", key), zap.Error(err))
		return true
	}
	return count <= int64(l.max)
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}
