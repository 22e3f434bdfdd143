// README: Redis-backed cache for weather reports.
package weather

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 10 * time.Minute

// cache wraps a redis client for report lookups. A nil client disables
// caching entirely; every method becomes a no-op.
type cache struct {
	rdb *redis.Client
}

func cacheKey(location string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(location))
}

func (c *cache) get(ctx context.Context, location string) *Report {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, cacheKey(location)).Bytes()
	if err != nil {
		return nil
	}
	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil
	}
	return &r
}

func (c *cache) set(ctx context.Context, location string, r *Report) {
	if c == nil || c.rdb == nil || r == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cacheKey(location), raw, cacheTTL)
}
