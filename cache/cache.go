package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// MenuKey holds the serialized public menu response.
	MenuKey = "menu:all"
	// MenuTTL bounds staleness if an invalidation is ever missed.
	MenuTTL = time.Hour
)

// Cache is a best-effort Redis wrapper: every failure is logged and reported
// as a miss so the caller falls through to the database.
type Cache struct {
	client *redis.Client
	log    *zap.Logger
}

func New(addr string, log *zap.Logger) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		log:    log,
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warn("cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateMenu drops the cached menu; called after every admin mutation
// that can change what customers see.
func (c *Cache) InvalidateMenu(ctx context.Context) {
	c.Delete(ctx, MenuKey)
}
