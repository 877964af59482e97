// Package cache implements the read-through cache used by list endpoints.
// Every operation is best effort: backend failures are logged and treated
// as a miss, never surfaced to callers.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"
)

// Cache serializes values as JSON on top of a Store
type Cache struct {
	store Store
}

// New wraps a store
func New(store Store) *Cache {
	return &Cache{store: store}
}

// Backend returns the name of the underlying store
func (c *Cache) Backend() string {
	return c.store.Name()
}

// Get decodes the cached value for key into dest and reports whether it was a hit
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Printf("⚠️ cache get %q failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("⚠️ cache entry %q is not valid JSON: %v", key, err)
		return false
	}
	return true
}

// Set stores value under key; ttl <= 0 means no expiry
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("⚠️ cache set %q: encode failed: %v", key, err)
		return
	}
	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		log.Printf("⚠️ cache set %q failed: %v", key, err)
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, key); err != nil {
		log.Printf("⚠️ cache delete %q failed: %v", key, err)
	}
}

func (c *Cache) DeleteByPattern(ctx context.Context, pattern string) {
	if err := c.store.DeleteByPattern(ctx, pattern); err != nil {
		log.Printf("⚠️ cache delete pattern %q failed: %v", pattern, err)
	}
}

// Ping checks the backend; used by the health endpoint
func (c *Cache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

func (c *Cache) Close() error {
	return c.store.Close()
}
