package storage

import (
	"sync"
	"time"

	"github.com/yourusername/grocery-order-bot/internal/domain/constants"
	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

// SnapshotCache holds the most recently fetched full product listing. A
// snapshot older than the TTL is reported stale so the caller refetches;
// overlapping refreshes simply race and the last writer wins, which mirrors
// how the clients always behaved.
type SnapshotCache struct {
	mu        sync.RWMutex
	products  []entity.Product
	fetchedAt time.Time
	ttl       time.Duration
}

// NewSnapshotCache creates an empty snapshot cache.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = constants.DefaultSnapshotTTL
	}
	return &SnapshotCache{ttl: ttl}
}

// Get returns a copy of the snapshot and whether it is still fresh.
func (c *SnapshotCache) Get() ([]entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.products == nil {
		return nil, false
	}
	fresh := time.Since(c.fetchedAt) <= c.ttl
	return append([]entity.Product(nil), c.products...), fresh
}

// Set replaces the snapshot.
func (c *SnapshotCache) Set(products []entity.Product) {
	c.mu.Lock()
	c.products = append([]entity.Product(nil), products...)
	c.fetchedAt = time.Now()
	c.mu.Unlock()
}

// Invalidate drops the snapshot.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.products = nil
	c.mu.Unlock()
}
