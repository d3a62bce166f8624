package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joshijay655/justdostuff/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache wraps the redis client for cache-aside reads and pub/sub fanout.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func InitCache(config utils.RedisConfig, log *zap.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return &Cache{
		client: client,
		ttl:    time.Duration(config.CacheTTL) * time.Second,
		log:    log.With(zap.String("component", "cache")),
	}, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// GetJSON loads a cached value into dest. Returns false on miss; cache
// errors are logged and treated as misses so reads fall through to the DB.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// Publish pushes a JSON payload onto a channel. Used for the per-conversation
// message feed; delivery is best effort.
func (c *Cache) Publish(ctx context.Context, channel string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		c.log.Warn("publish encode failed", zap.String("channel", channel), zap.Error(err))
		return
	}

	if err := c.client.Publish(ctx, channel, data).Err(); err != nil {
		c.log.Warn("publish failed", zap.String("channel", channel), zap.Error(err))
	}
}

// Subscribe opens a subscription to a channel. The caller owns the returned
// PubSub and must Close it.
func (c *Cache) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return c.client.Subscribe(ctx, channel)
}
