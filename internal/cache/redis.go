package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/comradezone/dating/internal/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	// CountTTL bounds how stale a cached incoming-like count may get.
	CountTTL time.Duration
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	ttl := time.Duration(cfg.Dating.LikeCountTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{Client: redis.NewClient(opts), CountTTL: ttl}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

// KeyForIncomingLikeCount generates Redis key for a profile's pending incoming likes.
func (c *RedisCache) KeyForIncomingLikeCount(profileID string) string {
	return fmt.Sprintf("likes:incoming:count:%s", profileID)
}

// SetIncomingLikeCount stores the count, always refreshing TTL.
func (c *RedisCache) SetIncomingLikeCount(ctx context.Context, profileID string, count int64) error {
	return c.Client.Set(ctx, c.KeyForIncomingLikeCount(profileID), count, c.CountTTL).Err()
}

// GetIncomingLikeCount returns (count, true) on a hit and (0, false) on a miss.
func (c *RedisCache) GetIncomingLikeCount(ctx context.Context, profileID string) (int64, bool, error) {
	key := c.KeyForIncomingLikeCount(profileID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// unreadable entry: treat as a miss, it is rewritten on the next DB read
		return 0, false, nil
	}
	// refresh TTL on access since this profile is active
	_ = c.Client.Expire(ctx, key, c.CountTTL).Err()
	return n, true, nil
}

// InvalidateIncomingLikeCounts drops cached counts for the given profiles.
func (c *RedisCache) InvalidateIncomingLikeCounts(ctx context.Context, profileIDs ...string) error {
	if len(profileIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(profileIDs))
	for _, id := range profileIDs {
		keys = append(keys, c.KeyForIncomingLikeCount(id))
	}
	return c.Del(ctx, keys...)
}
