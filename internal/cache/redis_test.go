package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comradezone/dating/internal/cache"
	"github.com/comradezone/dating/internal/config"
)

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.Dating.LikeCountTTLSeconds = 60

	c := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestIncomingLikeCount_MissThenHit(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	_, hit, err := c.GetIncomingLikeCount(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetIncomingLikeCount(ctx, "p1", 7))
	n, hit, err := c.GetIncomingLikeCount(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(7), n)

	assert.Equal(t, time.Minute, mr.TTL(c.KeyForIncomingLikeCount("p1")))
}

func TestIncomingLikeCount_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	require.NoError(t, c.SetIncomingLikeCount(ctx, "p1", 2))
	mr.FastForward(2 * time.Minute)

	_, hit, err := c.GetIncomingLikeCount(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestInvalidateIncomingLikeCounts(t *testing.T) {
	ctx := context.Background()
	c, _ := setupCache(t)

	require.NoError(t, c.SetIncomingLikeCount(ctx, "a", 1))
	require.NoError(t, c.SetIncomingLikeCount(ctx, "b", 2))
	require.NoError(t, c.SetIncomingLikeCount(ctx, "c", 3))

	require.NoError(t, c.InvalidateIncomingLikeCounts(ctx, "a", "b"))

	_, hitA, _ := c.GetIncomingLikeCount(ctx, "a")
	_, hitB, _ := c.GetIncomingLikeCount(ctx, "b")
	n, hitC, _ := c.GetIncomingLikeCount(ctx, "c")
	assert.False(t, hitA)
	assert.False(t, hitB)
	assert.True(t, hitC)
	assert.Equal(t, int64(3), n)
}

func TestIncomingLikeCount_GarbageIsMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	require.NoError(t, mr.Set(c.KeyForIncomingLikeCount("p1"), "not-a-number"))
	_, hit, err := c.GetIncomingLikeCount(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, hit)
}
