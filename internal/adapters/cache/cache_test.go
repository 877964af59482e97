package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"promessas-api/internal/adapters/cache"
	"promessas-api/internal/adapters/cache/mocks"
)

type party struct {
	ID      uint   `json:"id"`
	Acronym string `json:"acronym"`
}

func TestCache_RoundTripOnMemoryStore(t *testing.T) {
	store := cache.NewMemoryStore(time.Second)
	c := cache.New(store)
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "parties:all", []party{{ID: 1, Acronym: "ABC"}}, time.Minute)

	var got []party
	require.True(t, c.Get(ctx, "parties:all", &got))
	assert.Equal(t, []party{{ID: 1, Acronym: "ABC"}}, got)
	assert.Equal(t, "memory", c.Backend())
}

func TestCache_FailuresAreMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	c := cache.New(store)
	ctx := context.Background()
	boom := errors.New("connection reset")

	store.EXPECT().Get(gomock.Any(), "states:all").Return(nil, boom)
	store.EXPECT().Set(gomock.Any(), "states:all", []byte(`[]`), 300*time.Second).Return(boom)
	store.EXPECT().Delete(gomock.Any(), "states:all").Return(boom)
	store.EXPECT().DeleteByPattern(gomock.Any(), "offices:*").Return(boom)

	var dest []party
	assert.False(t, c.Get(ctx, "states:all", &dest))
	assert.NotPanics(t, func() {
		c.Set(ctx, "states:all", []party{}, 300*time.Second)
		c.Delete(ctx, "states:all")
		c.DeleteByPattern(ctx, "offices:*")
	})
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	c := cache.New(store)

	store.EXPECT().Get(gomock.Any(), "cities:35").Return([]byte(`{not json`), nil)

	var dest []party
	assert.False(t, c.Get(context.Background(), "cities:35", &dest))
	assert.Nil(t, dest)
}

func TestCache_MissIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	c := cache.New(store)

	store.EXPECT().Get(gomock.Any(), "elections:all").Return(nil, cache.ErrMiss)

	var dest []party
	assert.False(t, c.Get(context.Background(), "elections:all", &dest))
}

func TestCache_UnencodableValueIsNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	c := cache.New(store)

	// no Set expected on the store
	c.Set(context.Background(), "bad", make(chan int), time.Minute)
}
