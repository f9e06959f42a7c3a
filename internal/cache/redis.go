package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a redis client for the onboarding cache.
func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

// Ping verifies the connection.
func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}
