package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InvoicesScope keys every cached representation of the invoice listing.
const InvoicesScope = "/dashboard/invoices"

// Cache stores rendered page payloads in Redis, keyed by logical scope.
// Invalidation marks a whole scope stale by dropping its keys.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns the cached payload for scope, or false on miss.
func (c *Cache) Get(ctx context.Context, scope string) ([]byte, bool) {
	data, err := c.rdb.Get(ctx, key(scope)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a payload for scope with the configured TTL.
func (c *Cache) Set(ctx context.Context, scope string, payload []byte) {
	if err := c.rdb.Set(ctx, key(scope), payload, c.ttl).Err(); err != nil {
		log.Printf("cache set failed for %s: %v", scope, err)
	}
}

// Invalidate drops the cached payload for scope. It is fire-and-forget:
// failures are logged and never reach the caller's outcome.
func (c *Cache) Invalidate(ctx context.Context, scope string) {
	if err := c.rdb.Del(ctx, key(scope)).Err(); err != nil {
		log.Printf("cache invalidation failed for %s: %v", scope, err)
	}
}

func key(scope string) string {
	return "page:" + scope
}
