package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheKey string

func TestInMemoryCacheManager_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[cacheKey, []int]("test", time.Minute, time.Minute, nil)

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)

	c.Set(ctx, "a", []int{1, 2}, 0)
	v, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)
	assert.Equal(t, 1, c.Len())

	c.Delete(ctx, "a")
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)

	c.Set(ctx, "b", nil, 0)
	c.Set(ctx, "c", nil, 0)
	c.Flush(ctx)
	assert.Equal(t, 0, c.Len())
}

func TestInMemoryCacheManager_Expires(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[cacheKey, string]("test", time.Minute, time.Minute, nil)

	c.Set(ctx, "k", "v", 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestReadThroughCache_LoadsOnceAndSkipsErrors(t *testing.T) {
	ctx := context.Background()
	calls := 0
	fail := true
	rt := NewReadThroughCache[cacheKey, int](
		NewInMemoryCacheManager[cacheKey, int]("test", time.Minute, time.Minute, nil),
		time.Minute,
		func(context.Context) (int, error) {
			calls++
			if fail {
				return 0, errors.New("boom")
			}
			return 42, nil
		},
	)

	_, err := rt.Get(ctx, "k")
	require.Error(t, err)

	fail = false
	v, err := rt.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = rt.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls, "error is not cached, success is")

	rt.Invalidate(ctx, "k")
	_, _ = rt.Get(ctx, "k")
	assert.Equal(t, 3, calls)
}
