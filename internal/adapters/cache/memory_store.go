package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/robfig/cron/v3"
)

// MemoryStore keeps entries in process. Expired entries are dropped lazily
// on lookup and periodically by a sweep job.
type MemoryStore struct {
	items *ttlcache.Cache[string, []byte]
	sweep *cron.Cron
}

// NewMemoryStore creates an in-memory store and starts its sweeper.
// The sweep interval is rounded to whole seconds (minimum 1s).
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	items := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)

	sweep := cron.New()
	sweep.Schedule(cron.Every(sweepInterval), cron.FuncJob(items.DeleteExpired))
	sweep.Start()

	return &MemoryStore{items: items, sweep: sweep}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	item := s.items.Get(key)
	if item == nil {
		return nil, ErrMiss
	}
	if item.IsExpired() {
		s.items.Delete(key)
		return nil, ErrMiss
	}
	return item.Value(), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	s.items.Set(key, value, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

func (s *MemoryStore) DeleteByPattern(_ context.Context, pattern string) error {
	for _, key := range s.items.Keys() {
		if MatchPattern(pattern, key) {
			s.items.Delete(key)
		}
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

// Len returns the number of entries, expired ones included until swept
func (s *MemoryStore) Len() int {
	return s.items.Len()
}

// Close stops the sweeper and waits for a running sweep to finish
func (s *MemoryStore) Close() error {
	<-s.sweep.Stop().Done()
	s.items.DeleteAll()
	return nil
}
