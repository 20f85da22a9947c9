package cache

import (
	"context"
	"sync"
	"time"

	"github.com/propman/backend/internal/domain/billing"
)

// InMemorySummaryCache implements billing.SummaryCache with a local
// TTL-bounded entry. Suitable for single-instance deployments and tests.
type InMemorySummaryCache struct {
	mu        sync.RWMutex
	summary   *billing.Summary
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewInMemorySummaryCache creates an in-memory summary cache
func NewInMemorySummaryCache(ttl time.Duration) *InMemorySummaryCache {
	return &InMemorySummaryCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached summary, or (nil, nil) on a miss or expiry
func (c *InMemorySummaryCache) Get(ctx context.Context) (*billing.Summary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.summary == nil || c.now().After(c.expiresAt) {
		return nil, nil
	}
	copied := *c.summary
	return &copied, nil
}

// Set stores the summary
func (c *InMemorySummaryCache) Set(ctx context.Context, summary *billing.Summary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *summary
	c.summary = &copied
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

// Invalidate drops the cached summary
func (c *InMemorySummaryCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = nil
	return nil
}
