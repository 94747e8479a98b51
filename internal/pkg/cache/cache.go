package cache

import (
	"context"
	"sync"
	"time"

	"travel-core/internal/pkg/clock"

	"golang.org/x/sync/singleflight"
)

// Store is a generic in-memory key-value cache with per-entry TTL.
// Expiry is evaluated lazily at read time; concurrent Get/Set on the
// same key are safe and Set is last-writer-wins.
type Store[V any] struct {
	mu    sync.RWMutex
	items map[string]entry[V]
	clock clock.Clock
}

type entry[V any] struct {
	value    V
	storedAt time.Time
	ttl      time.Duration
}

func New[V any](clk clock.Clock) *Store[V] {
	return &Store[V]{
		items: make(map[string]entry[V]),
		clock: clk,
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.clock.Now().After(e.storedAt.Add(e.ttl)) {
		s.mu.Lock()
		// Re-check: another writer may have refreshed the entry
		if cur, still := s.items[key]; still && cur.storedAt.Equal(e.storedAt) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = entry[V]{
		value:    value,
		storedAt: s.clock.Now(),
		ttl:      ttl,
	}
}

func (s *Store[V]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Loader combines a Store with per-key single-flight collapsing: the
// first concurrent miss for a key performs the fetch, the rest wait for
// its result. Fetch errors are never stored.
type Loader[V any] struct {
	store *Store[V]
	group singleflight.Group
}

func NewLoader[V any](store *Store[V]) *Loader[V] {
	return &Loader[V]{store: store}
}

func (l *Loader[V]) GetOrFetch(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fetch func(ctx context.Context) (V, error),
) (V, error) {
	if v, ok := l.store.Get(key); ok {
		return v, nil
	}

	res, err, _ := l.group.Do(key, func() (any, error) {
		if v, ok := l.store.Get(key); ok {
			return v, nil
		}
		v, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		l.store.Set(key, v, ttl)
		return v, nil
	})

	var zero V
	if err != nil {
		return zero, err
	}
	return res.(V), nil
}
