package cache

import (
	"strings"
	"sync"
	"time"

	"jobtrack-engine/internal/domain"
)

type item struct {
	value   domain.AggregateResponse
	expTime time.Time
}

// ResultCache holds aggregate search responses keyed by the normalized
// (query, location) pair. Entries expire by time only; a reader sees either
// the previous value for a key or the new one, never a partial write.
// Losing the cache changes latency, not results.
type ResultCache struct {
	mu    sync.RWMutex
	items map[string]item

	now      func() time.Time
	stopOnce sync.Once
	stopChan chan struct{}
}

// New builds a cache. If cleanUpInterval > 0 a background sweep removes
// expired entries; expiry is enforced at read time either way.
func New(cleanUpInterval time.Duration) *ResultCache {
	c := &ResultCache{
		items:    make(map[string]item),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
	if cleanUpInterval > 0 {
		go c.cleanUp(cleanUpInterval)
	}
	return c
}

// Key normalizes (query, location) into the cache key. Case and surrounding
// whitespace never produce distinct entries.
func Key(query, location string) string {
	return strings.ToLower(strings.TrimSpace(query)) + "|" + strings.ToLower(strings.TrimSpace(location))
}

func (c *ResultCache) Get(key string) (domain.AggregateResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.items[key]
	if !ok {
		return domain.AggregateResponse{}, false
	}
	if c.now().After(it.expTime) {
		return domain.AggregateResponse{}, false
	}
	return it.value, true
}

// Put stores value under key for ttl. A fresh fetch for the same key
// silently supersedes the prior entry, last writer wins.
func (c *ResultCache) Put(key string, value domain.AggregateResponse, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item{
		value:   value,
		expTime: c.now().Add(ttl),
	}
}

func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *ResultCache) Close() {
	c.stopOnce.Do(func() { close(c.stopChan) })
}

func (c *ResultCache) cleanUp(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanUpExpired()
		case <-c.stopChan:
			return
		}
	}
}

func (c *ResultCache) cleanUpExpired() {
	start := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, it := range c.items {
		if start.After(it.expTime) {
			delete(c.items, key)
		}
	}
}
