package fundboard

import (
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store memoizes fetch results per key with a bounded time-to-live.
//
// Within the window all callers observe the same value and at most one
// fetch is ever in flight per key. When a refresh fails, the last good
// value is served flagged stale together with the error; it is never
// evicted or overwritten by the failure. Values are owned by the store
// with copy-out semantics: callers must treat them as immutable.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	group   singleflight.Group
	now     func() time.Time // test seam
}

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// NewStore returns an empty Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: map[string]*entry[T]{}, now: time.Now}
}

// GetOrFetch returns the cached value for key when it is younger than
// ttl, otherwise calls fetch. stale is true when fetch failed and a prior
// value is being served instead; in that case err carries the failure.
func (s *Store[T]) GetOrFetch(key string, ttl time.Duration, fetch func() (T, error)) (value T, stale bool, err error) {
	if v, ok := s.fresh(key, ttl); ok {
		return v, false, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// a concurrent caller may have refreshed while we waited
		if v, ok := s.fresh(key, ttl); ok {
			return v, nil
		}
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.entries[key] = &entry[T]{value: v, fetchedAt: s.now()}
		s.mu.Unlock()
		return v, nil
	})
	if err != nil {
		s.mu.Lock()
		prior, ok := s.entries[key]
		s.mu.Unlock()
		if ok {
			log.Printf("refresh of %q failed, serving stale data from %s: %v", key, prior.fetchedAt.Format(time.RFC3339), err)
			return prior.value, true, err
		}
		var zero T
		return zero, false, err
	}
	return v.(T), false, nil
}

// fresh returns the cached value when it is younger than ttl.
func (s *Store[T]) fresh(key string, ttl time.Duration) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok && s.now().Sub(e.fetchedAt) < ttl {
		return e.value, true
	}
	var zero T
	return zero, false
}
