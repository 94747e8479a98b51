//go:build unit

package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"travel-core/internal/pkg/cache"
	"travel-core/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := cache.New[string](clk)

	store.Set("k", "v", 10*time.Minute)

	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := cache.New[int](clk)

	store.Set("k", 42, 5*time.Minute)

	clk.Add(5*time.Minute + time.Second)

	_, ok := store.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "expired entry should be evicted on read")
}

func TestStore_LastWriterWins(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := cache.New[string](clk)

	store.Set("k", "first", time.Minute)
	store.Set("k", "second", time.Minute)

	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestStore_Invalidate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := cache.New[string](clk)

	store.Set("k", "v", time.Minute)
	store.Invalidate("k")

	_, ok := store.Get("k")
	assert.False(t, ok)
}

func TestLoader_CollapsesConcurrentMisses(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	loader := cache.NewLoader(cache.New[string](clk))

	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(_ context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "fetched", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := range workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v, err := loader.GetOrFetch(context.Background(), "k", time.Minute, fetch)
			assert.NoError(t, err)
			results[n] = v
		}(i)
	}

	// Give the goroutines time to pile up on the same key
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "only one fetch should run for concurrent misses")
	for _, v := range results {
		assert.Equal(t, "fetched", v)
	}
}

func TestLoader_ErrorNotCached(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	loader := cache.NewLoader(cache.New[string](clk))

	var calls int
	fetch := func(_ context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", assert.AnError
		}
		return "ok", nil
	}

	_, err := loader.GetOrFetch(context.Background(), "k", time.Minute, fetch)
	require.Error(t, err)

	got, err := loader.GetOrFetch(context.Background(), "k", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)
}
