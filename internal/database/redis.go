package database

import (
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns nil when no URL is configured; callers treat a nil client
// as "redis disabled" and fall back to in-memory alternatives.
func NewRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	return redis.NewClient(opts)
}
