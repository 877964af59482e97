package cache

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// ErrMiss is returned by Store.Get when the key is absent or expired
var ErrMiss = errors.New("cache miss")

// Store is a key/value backend holding serialized values.
// A ttl <= 0 stores the value without expiry.
type Store interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
	Close() error
}

// MatchPattern reports whether key matches pattern.
// "*" matches everything, a trailing "*" is a prefix match, anything else is exact.
func MatchPattern(pattern, key string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(key, prefix)
	}
	return pattern == key
}

// NewStore picks the backend: Redis when redisURL is set and reachable,
// the in-memory store otherwise.
func NewStore(ctx context.Context, redisURL string, sweepInterval time.Duration) Store {
	if redisURL == "" {
		log.Println("ℹ️ REDIS_URL not set, using in-memory cache")
		return NewMemoryStore(sweepInterval)
	}

	rs, err := NewRedisStore(redisURL)
	if err == nil {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = rs.Ping(pingCtx)
		cancel()
		if err != nil {
			_ = rs.Close()
		}
	}
	if err != nil {
		log.Printf("⚠️ Redis unavailable (%v), falling back to in-memory cache", err)
		return NewMemoryStore(sweepInterval)
	}

	log.Println("✅ Redis cache connected")
	return rs
}
