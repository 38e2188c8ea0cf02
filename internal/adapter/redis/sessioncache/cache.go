// Package sessioncache caches session submission lists in Redis and wraps a
// SubmissionStore so reads go through the cache.
package sessioncache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/domain"
)

const sessionKeyPrefix = "roster:session:"

var _ secondary.SessionCache = (*RedisCache)(nil)

// RedisCache implements SessionCache with Redis
type RedisCache struct {
	redisClient *redis.Client
	logger      primary.Logger
	ttl         time.Duration
}

// NewRedisCache creates a new Redis session cache
func NewRedisCache(redisClient *redis.Client, logger primary.Logger, ttl time.Duration) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		logger:      logger,
		ttl:         ttl,
	}
}

func sessionKey(date domain.SessionDate) string {
	return sessionKeyPrefix + date.String()
}

// GetSession retrieves a cached session from Redis
func (c *RedisCache) GetSession(ctx context.Context, date domain.SessionDate) ([]*domain.Submission, bool, error) {
	data, err := c.redisClient.Get(ctx, sessionKey(date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached session: %w", err)
	}

	var subs []*domain.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		c.logger.Warn("Dropping undecodable cached session", "date", date, "error", err)
		return nil, false, nil
	}
	return subs, true, nil
}

// SetSession saves a session to Redis with expiration
func (c *RedisCache) SetSession(ctx context.Context, date domain.SessionDate, subs []*domain.Submission) error {
	data, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := c.redisClient.Set(ctx, sessionKey(date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}
	return nil
}

// InvalidateSession removes a cached session from Redis
func (c *RedisCache) InvalidateSession(ctx context.Context, date domain.SessionDate) error {
	if err := c.redisClient.Del(ctx, sessionKey(date)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	return nil
}
