package availability

import (
	"context"
	"sync"
	"time"

	"pass-finder/core/metrics"

	"golang.org/x/sync/singleflight"
)

const cacheKey = "availability"

// Cache serves the last aggregation result until it expires. A miss runs one full
// cycle; concurrent misses share it.
type Cache struct {
	provider Provider
	ttl      time.Duration
	metrics  *metrics.Metrics

	mu      sync.RWMutex
	records []Record
	built   time.Time
	gen     uint64
	sf      singleflight.Group
}

// NewCache wraps a provider. A ttl of zero or less disables caching.
func NewCache(p Provider, ttl time.Duration, m *metrics.Metrics) *Cache {
	return &Cache{provider: p, ttl: ttl, metrics: m}
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// BuiltAt returns when the cached result was built, or the zero time.
func (c *Cache) BuiltAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.built
}

func (c *Cache) fresh() ([]Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.records == nil || time.Since(c.built) > c.ttl {
		return nil, false
	}
	return c.records, true
}

// GetUnifiedAvailability returns a copy of the cached records, refreshing them first if
// they are missing or expired.
func (c *Cache) GetUnifiedAvailability(ctx context.Context) ([]Record, error) {
	if c.ttl <= 0 {
		return c.provider.GetUnifiedAvailability(ctx)
	}

	if records, ok := c.fresh(); ok {
		c.metrics.CacheHit()
		return CloneRecords(records), nil
	}

	result, err, _ := c.sf.Do(cacheKey, func() (interface{}, error) {
		if records, ok := c.fresh(); ok {
			return records, nil
		}

		c.mu.RLock()
		gen := c.gen
		c.mu.RUnlock()

		// One caller going away must not fail the cycle the others are waiting on.
		records, err := c.provider.GetUnifiedAvailability(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		// A cycle started before the last Invalidate must not replace a newer result.
		c.mu.Lock()
		if c.gen == gen {
			c.records = records
			c.built = time.Now()
		}
		c.mu.Unlock()

		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return CloneRecords(result.([]Record)), nil
}

// Invalidate drops the cached result so the next call runs a fresh cycle. Cycles still
// in flight finish for their callers but are not stored.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.gen++
	c.records = nil
	c.built = time.Time{}
	c.mu.Unlock()
	c.sf.Forget(cacheKey)
}

// Refresh invalidates the cache and rebuilds it.
func (c *Cache) Refresh(ctx context.Context) ([]Record, error) {
	c.Invalidate()
	return c.GetUnifiedAvailability(ctx)
}
