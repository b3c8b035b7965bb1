// Package cache memoizes score/recommendation pairs per (user, date) with a
// 24-hour TTL, single-flight recomputation, and range invalidation sized to
// the rolling windows that depend on a changed date.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/ripixel/readiness/pkg/types"
)

const (
	// DefaultTTL keeps an entry for a day unless new data invalidates it.
	DefaultTTL = 24 * time.Hour

	// DefaultMaxEntries bounds the LRU. ~90 days for ~700 users.
	DefaultMaxEntries = 65536

	// invalidationSpanDays covers the target date plus the 27 following
	// days: a chronic-load window anchored up to 28 days later still reads
	// the changed date.
	invalidationSpanDays = 28
)

// Result is one memoized engine output pair.
type Result struct {
	Score          types.RecoveryScore         `json:"score"`
	Recommendation types.WorkoutRecommendation `json:"recommendation"`
}

// ComputeFunc produces a fresh Result on cache miss.
type ComputeFunc func(ctx context.Context, userID string, date types.Date) (*Result, error)

// Cache is the only shared mutable structure in the engine. The singleflight
// group guarantees at most one in-flight computation per key; concurrent
// callers for the same key wait on and receive that one result.
//
// Invalidation must also beat in-flight computations: a flight that started
// before an invalidation read pre-invalidation store data, so it may return
// its result to callers already waiting on it but must not write it back.
// Each key carries a generation counter bumped on invalidation; a flight
// only caches its result if the generation is unchanged since it started.
type Cache struct {
	entries *expirable.LRU[string, *Result]
	group   singleflight.Group
	compute ComputeFunc

	mu  sync.Mutex
	gen map[string]uint64
}

func New(compute ComputeFunc, ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		entries: expirable.NewLRU[string, *Result](maxEntries, nil, ttl),
		compute: compute,
		gen:     make(map[string]uint64),
	}
}

func cacheKey(userID string, date types.Date) string {
	return fmt.Sprintf("%s|%s", userID, date)
}

// Get returns the memoized result for (user, date), computing it at most
// once per key across concurrent callers.
func (c *Cache) Get(ctx context.Context, userID string, date types.Date) (*Result, error) {
	key := cacheKey(userID, date)
	if r, ok := c.entries.Get(key); ok {
		return r, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent flight may have filled the entry while we queued.
		if r, ok := c.entries.Get(key); ok {
			return r, nil
		}
		gen := c.generation(key)
		r, err := c.compute(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		// Only cache if no invalidation landed while we were computing.
		c.mu.Lock()
		if c.gen[key] == gen {
			c.entries.Add(key, r)
		}
		c.mu.Unlock()
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (c *Cache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[key]
}

// invalidateKey bumps the key's generation before dropping the entry so that
// an in-flight computation for the key neither writes back its stale result
// nor is joined by callers arriving after the invalidation.
func (c *Cache) invalidateKey(key string) bool {
	c.mu.Lock()
	c.gen[key]++
	c.mu.Unlock()
	c.group.Forget(key)
	return c.entries.Remove(key)
}

// Recalculate drops the single entry and synchronously recomputes it.
// Idempotent: unchanged inputs reproduce the same result.
func (c *Cache) Recalculate(ctx context.Context, userID string, date types.Date) (*Result, error) {
	c.invalidateKey(cacheKey(userID, date))
	return c.Get(ctx, userID, date)
}

// InvalidateFrom removes the entries whose rolling windows could read the
// changed date: the date itself and the following 27 days. Returns how many
// live entries were actually dropped.
func (c *Cache) InvalidateFrom(userID string, date types.Date) int {
	removed := 0
	for i := 0; i < invalidationSpanDays; i++ {
		if c.invalidateKey(cacheKey(userID, date.AddDays(i))) {
			removed++
		}
	}
	return removed
}

// Len reports how many entries are currently live.
func (c *Cache) Len() int {
	return c.entries.Len()
}
