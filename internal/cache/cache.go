package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"pressbox-service/internal/domain"
	"pressbox-service/internal/metrics"
)

const defaultTTL = 5 * time.Minute

// ComputeFunc produces a fresh thread list on a cache miss.
type ComputeFunc func(ctx context.Context) ([]domain.GameThread, error)

type entry struct {
	threads  []domain.GameThread
	storedAt time.Time
}

// Cache memoizes per-game thread lists for a bounded staleness window,
// absorbing repeated UI refreshes and upstream rate limits. Concurrent
// misses for the same key collapse into one in-flight computation.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	group   singleflight.Group
	metrics *metrics.Recorder
	now     func() time.Time
}

// New constructs a Cache with the given TTL.
func New(ttl time.Duration, recorder *metrics.Recorder) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		metrics: recorder,
		now:     time.Now,
	}
}

// GetOrCompute returns the cached thread list for key when fresh, otherwise
// invokes compute, stores the result, and returns it. force bypasses the
// freshness check. A failed compute stores nothing, so the next call retries.
func (c *Cache) GetOrCompute(ctx context.Context, key string, force bool, compute ComputeFunc) ([]domain.GameThread, error) {
	if !force {
		if threads, ok := c.lookup(key); ok {
			c.metrics.RecordCacheLookup(true)
			return threads, nil
		}
	}
	c.metrics.RecordCacheLookup(false)

	v, err, _ := c.group.Do(key, func() (any, error) {
		if !force {
			// Another caller may have filled the entry while we waited.
			if threads, ok := c.lookup(key); ok {
				return threads, nil
			}
		}
		threads, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, threads)
		return threads, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.GameThread), nil
}

func (c *Cache) lookup(key string) ([]domain.GameThread, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.threads, true
}

func (c *Cache) store(key string, threads []domain.GameThread) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Lazy sweep: the key space is a handful of games per day, so dropping
	// entries a few TTLs past staleness is plenty for a long-running process.
	cutoff := c.now().Add(-4 * c.ttl)
	for k, e := range c.entries {
		if e.storedAt.Before(cutoff) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = entry{threads: threads, storedAt: c.now()}
}

// Purge drops every cached entry and reports how many were removed.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]entry)
	return n
}

// Len reports the number of cached entries, stale or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
