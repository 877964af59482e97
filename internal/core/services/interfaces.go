package services

import (
	"context"
	"fmt"
	"time"
)

// Cacher is the best-effort cache used by list endpoints.
// Get reports a hit; the other operations never fail.
type Cacher interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, key string)
	DeleteByPattern(ctx context.Context, pattern string)
}

// Cache keys
const (
	keyStates        = "states:all"
	keyParties       = "parties:all"
	keyElections     = "elections:all"
	keyOfficesAll    = "offices:all"
	keyOfficesPrefix = "offices:*"
)

func citiesKey(stateCode int) string {
	return fmt.Sprintf("cities:%d", stateCode)
}

func officesKey(officeType string) string {
	if officeType == "" {
		return keyOfficesAll
	}
	return "offices:" + officeType
}

// cachedList serves key from the cache, loading and storing it on a miss.
// Load failures are returned and nothing is cached.
func cachedList[T any](ctx context.Context, c Cacher, key string, ttl time.Duration, load func() ([]T, error)) ([]T, error) {
	var cached []T
	if c.Get(ctx, key, &cached) {
		return cached, nil
	}

	items, err := load()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	c.Set(ctx, key, items, ttl)
	return items, nil
}
