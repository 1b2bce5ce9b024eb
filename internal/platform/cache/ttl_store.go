// Package cache provides the in-process TTL stores and the Redis-backed
// series cache used by the request handlers.
package cache

import (
	"sync"
	"time"
)

// entry pairs a cached value with its capture time.
type entry[T any] struct {
	data     T
	cachedAt time.Time
}

// TTLStore is an in-memory key-value store with a fixed freshness window.
// Entries are never evicted automatically: a stale entry stays in the map
// until it is overwritten by the next successful fetch or removed by an
// explicit Delete. Len therefore counts stale entries too.
//
// All operations take the store mutex; concurrent misses may both fetch and
// both write, in which case the last write wins.
type TTLStore[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[T]
	clock   func() time.Time
}

// NewTTLStore creates a TTLStore with the given freshness window.
// If ttl is 0 or negative, it defaults to 5 minutes.
func NewTTLStore[T any](ttl time.Duration) *TTLStore[T] {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TTLStore[T]{
		ttl:     ttl,
		entries: map[string]entry[T]{},
		clock:   time.Now,
	}
}

// WithClock replaces the store clock. Tests use this to pin time.
func (s *TTLStore[T]) WithClock(clock func() time.Time) *TTLStore[T] {
	s.clock = clock
	return s
}

// Get returns the cached value and its capture time. ok is true only when
// the entry exists and is still inside the freshness window.
func (s *TTLStore[T]) Get(key string) (data T, cachedAt time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, found := s.entries[key]
	if !found {
		return data, time.Time{}, false
	}
	if s.clock().Sub(e.cachedAt) >= s.ttl {
		// Stale entries are reported as misses but kept in place; the next
		// successful fetch overwrites them.
		return data, time.Time{}, false
	}
	return e.data, e.cachedAt, true
}

// Set stores a value stamped with the current time.
func (s *TTLStore[T]) Set(key string, data T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[T]{data: data, cachedAt: s.clock()}
}

// Delete removes an entry. Removing a missing key is a no-op.
func (s *TTLStore[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Len returns the number of entries, fresh or stale.
func (s *TTLStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// TTL returns the freshness window.
func (s *TTLStore[T]) TTL() time.Duration {
	return s.ttl
}
