// internal/orchestrator/cache.go
package orchestrator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"creative-brief/internal/common/database"
	"creative-brief/internal/common/logger"
)

const cacheKeyPrefix = "brief:research"

// ResearchCache stores provider records in Redis. Every failure is treated as
// a miss; the pipeline never depends on the cache being up.
type ResearchCache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

// NewResearchCache returns nil when rdb is nil or ttl is not positive, which
// disables caching.
func NewResearchCache(rdb *database.RedisClient, ttl time.Duration, log logger.Logger) *ResearchCache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &ResearchCache{
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "research-cache"}),
	}
}

// cacheKey is brief:research:{provider}:{sha256 of the provider input}.
func cacheKey(provider string, input interface{}) string {
	raw, _ := json.Marshal(input)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, provider, hex.EncodeToString(sum[:]))
}

// Get decodes a cached record into out and reports whether it was found.
func (c *ResearchCache) Get(ctx context.Context, provider string, input, out interface{}) bool {
	if c == nil {
		return false
	}
	key := cacheKey(provider, input)
	val, err := c.redis.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, database.ErrCacheMiss) {
			c.logger.Warn("research cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		c.logger.Warn("research cache entry corrupt", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	return true
}

func (c *ResearchCache) Put(ctx context.Context, provider string, input, record interface{}) {
	if c == nil {
		return
	}
	key := cacheKey(provider, input)
	raw, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("research cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
