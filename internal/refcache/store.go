package refcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lbi-bank/ods-console/internal/observability"
)

const redisKeyPrefix = "refdata"

// Store is an optional redis read-through cache for the reference
// classification tables. Those tables are small and low-churn, so a short
// TTL is enough. Every failure path degrades to a direct database read;
// callers never see a cache error.
type Store struct {
	redis redis.Cmdable
	ttl   time.Duration
}

// NewStore wraps a redis client. A nil client yields a disabled cache; all
// lookups report miss and writes are dropped.
func NewStore(redis redis.Cmdable, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

// Enabled reports whether a backing redis client is configured.
func (s *Store) Enabled() bool {
	return s != nil && s.redis != nil
}

// Get unmarshals a cached reference row into dest. The boolean is false on
// miss, decode failure, or any redis error.
func (s *Store) Get(ctx context.Context, table, key string, dest any) bool {
	if !s.Enabled() {
		return false
	}
	val, err := s.redis.Get(ctx, redisKey(table, key)).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("redis reference lookup failed", zap.String("table", table), zap.Error(err))
			observability.IncrementReferenceCacheEvent("error")
			return false
		}
		observability.IncrementReferenceCacheEvent("miss")
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		zap.L().Warn("decode cached reference row", zap.String("table", table), zap.Error(err))
		observability.IncrementReferenceCacheEvent("error")
		return false
	}
	observability.IncrementReferenceCacheEvent("hit")
	return true
}

// Set caches a reference row. Failures are logged and dropped.
func (s *Store) Set(ctx context.Context, table, key string, value any) {
	if !s.Enabled() {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("marshal reference row", zap.String("table", table), zap.Error(err))
		return
	}
	if err := s.redis.Set(ctx, redisKey(table, key), payload, s.ttl).Err(); err != nil {
		zap.L().Warn("redis reference cache set failed", zap.String("table", table), zap.Error(err))
		observability.IncrementReferenceCacheEvent("error")
	}
}

func redisKey(table, key string) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, table, key)
}
