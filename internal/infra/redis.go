// README: Redis client setup; optional, nil client when no address.
package infra

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects to redis at addr. An empty addr returns nil so callers
// fall back to uncached operation. A failed ping logs and still returns the
// client; redis outages degrade caching, they do not block startup.
func NewRedis(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("redis ping failed (caching degraded): %v", err)
	}
	return client
}
