package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern, key string
		want         bool
	}{
		{"*", "anything", true},
		{"*", "", true},
		{"offices:*", "offices:all", true},
		{"offices:*", "offices:MUNICIPAL", true},
		{"offices:*", "elections:all", false},
		{"elections:all", "elections:all", true},
		{"elections:all", "elections:all:2", false},
		{"cities:35", "cities:3", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchPattern(tt.pattern, tt.key), "%s vs %s", tt.pattern, tt.key)
	}
}

// storeSuite runs the behaviour shared by every backend
func storeSuite(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "states:all", []byte(`[1,2]`), time.Minute))
		got, err := s.Get(ctx, "states:all")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1,2]`), got)
	})

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrMiss)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "parties:all", []byte(`[]`), 0))
		require.NoError(t, s.Delete(ctx, "parties:all"))
		_, err := s.Get(ctx, "parties:all")
		assert.ErrorIs(t, err, ErrMiss)
	})

	t.Run("delete by prefix pattern", func(t *testing.T) {
		s := newStore(t)
		for _, k := range []string{"offices:all", "offices:MUNICIPAL", "offices:FEDERAL_ESTADUAL", "elections:all"} {
			require.NoError(t, s.Set(ctx, k, []byte(`1`), time.Minute))
		}
		require.NoError(t, s.DeleteByPattern(ctx, "offices:*"))

		for _, k := range []string{"offices:all", "offices:MUNICIPAL", "offices:FEDERAL_ESTADUAL"} {
			_, err := s.Get(ctx, k)
			assert.ErrorIs(t, err, ErrMiss, k)
		}
		got, err := s.Get(ctx, "elections:all")
		require.NoError(t, err)
		assert.Equal(t, []byte(`1`), got)
	})

	t.Run("delete by exact pattern", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "elections:all", []byte(`1`), 0))
		require.NoError(t, s.Set(ctx, "elections:all:old", []byte(`1`), 0))
		require.NoError(t, s.DeleteByPattern(ctx, "elections:all"))

		_, err := s.Get(ctx, "elections:all")
		assert.ErrorIs(t, err, ErrMiss)
		_, err = s.Get(ctx, "elections:all:old")
		assert.NoError(t, err)
	})

	t.Run("glob characters are literal", func(t *testing.T) {
		s := newStore(t)
		for _, k := range []string{"tag:a?b", "tag:axb", "tag:[1]", "tag:1"} {
			require.NoError(t, s.Set(ctx, k, []byte(`1`), time.Minute))
		}
		require.NoError(t, s.DeleteByPattern(ctx, "tag:a?*"))
		require.NoError(t, s.DeleteByPattern(ctx, "tag:[1]"))

		for _, k := range []string{"tag:a?b", "tag:[1]"} {
			_, err := s.Get(ctx, k)
			assert.ErrorIs(t, err, ErrMiss, k)
		}
		for _, k := range []string{"tag:axb", "tag:1"} {
			_, err := s.Get(ctx, k)
			assert.NoError(t, err, k)
		}
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	storeSuite(t, func(t *testing.T) Store {
		s := NewMemoryStore(time.Second)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestMemoryStore_LazyExpiry(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cities:35", []byte(`[]`), 20*time.Millisecond))
	require.NoError(t, s.Set(ctx, "states:all", []byte(`[]`), 0))
	time.Sleep(60 * time.Millisecond)

	_, err := s.Get(ctx, "cities:35")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = s.Get(ctx, "states:all")
	assert.NoError(t, err, "entries without ttl never expire")
}

func TestMemoryStore_SweepRemovesExpired(t *testing.T) {
	s := NewMemoryStore(time.Second)
	defer s.Close()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("cities:%d", i), []byte(`[]`), 10*time.Millisecond))
	}
	require.NoError(t, s.Set(ctx, "states:all", []byte(`[]`), 0))

	assert.Eventually(t, func() bool { return s.Len() == 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestMemoryStore_CloseStopsSweeper(t *testing.T) {
	s := NewMemoryStore(time.Second)
	require.NoError(t, s.Close())
	assert.Equal(t, 0, s.Len())
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStore(t *testing.T) {
	storeSuite(t, func(t *testing.T) Store {
		s, _ := newTestRedisStore(t)
		return s
	})
}

func TestRedisStore_Expiry(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "elections:all", []byte(`[]`), 5*time.Second))
	require.NoError(t, s.Set(ctx, "states:all", []byte(`[]`), 0))
	assert.Equal(t, 5*time.Second, mr.TTL("elections:all"))
	assert.Equal(t, time.Duration(0), mr.TTL("states:all"))

	mr.FastForward(6 * time.Second)

	_, err := s.Get(ctx, "elections:all")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = s.Get(ctx, "states:all")
	assert.NoError(t, err)
}

func TestRedisStore_DeleteByPatternAcrossChunks(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	for i := 0; i < 1200; i++ {
		require.NoError(t, mr.Set(fmt.Sprintf("cities:%d", i), "[]"))
	}
	require.NoError(t, mr.Set("states:all", "[]"))

	require.NoError(t, s.DeleteByPattern(ctx, "cities:*"))
	assert.Equal(t, []string{"states:all"}, mr.Keys())
}

func TestScanPattern(t *testing.T) {
	tests := []struct{ in, want string }{
		{"*", "*"},
		{"offices:*", "offices:*"},
		{"elections:all", "elections:all"},
		{"tag:a?*", `tag:a\?*`},
		{"tag:[1]", `tag:\[1\]`},
		{`tag:a\b`, `tag:a\\b`},
		{"tag:**", `tag:\**`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scanPattern(tt.in), tt.in)
	}
}

func TestRedisStore_InvalidURL(t *testing.T) {
	_, err := NewRedisStore("not-a-url")
	assert.Error(t, err)
}

func TestNewStore_Selection(t *testing.T) {
	ctx := context.Background()

	t.Run("no url uses memory", func(t *testing.T) {
		s := NewStore(ctx, "", time.Second)
		defer s.Close()
		assert.Equal(t, "memory", s.Name())
	})

	t.Run("reachable redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		s := NewStore(ctx, "redis://"+mr.Addr(), time.Second)
		defer s.Close()
		assert.Equal(t, "redis", s.Name())
	})

	t.Run("unreachable redis falls back", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()
		s := NewStore(ctx, "redis://"+addr, time.Second)
		defer s.Close()
		assert.Equal(t, "memory", s.Name())
	})
}
