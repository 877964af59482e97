package services_test

import (
	"testing"
	"time"

	"promessas-api/internal/adapters/cache"
	"promessas-api/internal/config"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c := cache.New(cache.NewMemoryStore(time.Second))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testTTLs() config.CacheConfig {
	return config.CacheConfig{
		StatesTTL:    time.Minute,
		CitiesTTL:    time.Minute,
		PartiesTTL:   time.Minute,
		OfficesTTL:   time.Minute,
		ElectionsTTL: time.Minute,
	}
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }
func floatPtr(v float64) *float64 { return &v }
