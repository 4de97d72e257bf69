package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestLimiter(max int, window time.Duration) (*Limiter, *MemoryStore) {
	store := NewMemoryStore()
	return NewLimiter(store, max, window, zap.NewNop()), store
}

func TestLimiterAllowsUpToMax(t *testing.T) {
	limiter, _ := newTestLimiter(5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow(ctx, "203.0.113.9"), "call %d should be admitted", i+1)
	}
	assert.False(t, limiter.Allow(ctx, "203.0.113.9"), "6th call in window should be rejected")
}

func TestLimiterIsolatesKeys(t *testing.T) {
	limiter, _ := newTestLimiter(5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		limiter.Allow(ctx, "203.0.113.9")
	}
	assert.True(t, limiter.Allow(ctx, "198.51.100.4"),
		"a different address in the same window must still be admitted")
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	store := NewMemoryStore()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	limiter := NewLimiter(store, 5, time.Minute, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow(ctx, "k"))
	}
	assert.False(t, limiter.Allow(ctx, "k"))

	current = current.Add(61 * time.Second)
	assert.True(t, limiter.Allow(ctx, "k"), "a fresh window should admit again")
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

func TestLimiterFailsOpenOnStoreError(t *testing.T) {
	limiter := NewLimiter(failingStore{}, 1, time.Minute, zap.NewNop())
	assert.True(t, limiter.Allow(context.Background(), "k"))
	assert.True(t, limiter.Allow(context.Background(), "k"))
}

func TestMemoryStoreIncrementIsAtomic(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const calls = 100
	var wg sync.WaitGroup
	counts := make(chan int64, calls)

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := store.Incr(ctx, "k", time.Minute)
			assert.NoError(t, err)
			counts <- n
		}()
	}
	wg.Wait()
	close(counts)

	seen := make(map[int64]bool, calls)
	for n := range counts {
		assert.False(t, seen[n], "count %d observed twice", n)
		seen[n] = true
	}
	assert.Len(t, seen, calls)
}

func TestMemoryStoreReset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, _ = store.Incr(ctx, "k", time.Minute)
	_, _ = store.Incr(ctx, "k", time.Minute)
	store.Reset()

	n, err := store.Incr(ctx, "k", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
