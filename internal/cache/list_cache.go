package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ListCache stores serialized list responses under a namespace. Cache
// failures are logged and never surface to callers.
type ListCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Invalidate(ctx context.Context)
}

// NewListCache returns a Redis-backed cache, or a no-op cache when client is nil.
func NewListCache(client *redis.Client, namespace string, ttl time.Duration, logger zerolog.Logger) ListCache {
	if client == nil {
		return NopCache{}
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisListCache{
		client:    client,
		namespace: namespace,
		ttl:       ttl,
		logger:    logger.With().Str("component", "list_cache").Str("namespace", namespace).Logger(),
	}
}

type redisListCache struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
	logger    zerolog.Logger
}

func (c *redisListCache) key(name string) string {
	return fmt.Sprintf("%s:list:%s", c.namespace, name)
}

func (c *redisListCache) Get(ctx context.Context, key string, dest interface{}) bool {
	cached, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to read list cache")
		}
		return false
	}

	if err := json.Unmarshal(cached, dest); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding unreadable list cache entry")
		return false
	}

	c.logger.Debug().Str("key", key).Msg("list cache hit")
	return true
}

func (c *redisListCache) Set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to encode list cache entry")
		return
	}

	if err := c.client.Set(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to store list cache entry")
	}
}

func (c *redisListCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.key("*"), 100).Iterator()
	keys := make([]string, 0, 4)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to scan list cache")
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to invalidate list cache")
	}
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string, interface{}) bool { return false }

func (NopCache) Set(context.Context, string, interface{}) {}

func (NopCache) Invalidate(context.Context) {}
