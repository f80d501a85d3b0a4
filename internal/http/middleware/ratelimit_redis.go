package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces limiter counters so they can share a redis with
// other deployments.
const redisKeyPrefix = "talentrank:ratelimit:"

var fixedWindowScript = redis.NewScript(`
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return hits
`)

// RedisLimiter shares fixed windows across instances. Redis failures fail
// open.
type RedisLimiter struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{client: client, timeout: 250 * time.Millisecond}
}

func (l *RedisLimiter) Allow(key string, limit Limit) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit.Max <= 0 || limit.Window <= 0 {
		return true
	}
	ttl := limit.Window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	hits, err := fixedWindowScript.Run(ctx, l.client, []string{redisKeyPrefix + key}, ttl).Int64()
	if err != nil {
		return true
	}
	return hits <= int64(limit.Max)
}
