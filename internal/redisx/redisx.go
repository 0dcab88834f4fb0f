// Package redisx manages the optional Redis connection used by the rate
// limiter. When Redis is disabled or unreachable the server degrades to the
// in-memory limiter.
package redisx

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Kostiantyn78/ImageHub/internal/config"

	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
	redisReady  bool
)

// Client returns the Redis client, or nil when disabled or unavailable.
func Client() *redis.Client {
	redisOnce.Do(initClient)
	if !redisReady {
		return nil
	}
	return redisClient
}

// Key joins key parts under the configured prefix.
func Key(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "imagehub"
	}
	key := prefix
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func initClient() {
	cfg := config.Get()
	if !cfg.Redis.Enabled {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Printf("redis unavailable, falling back to in-memory rate limiting: %v", err)
		return
	}

	redisClient = client
	redisReady = true
	log.Printf("redis connected: %s (db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
}

// Close releases the Redis connection on shutdown.
func Close() error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Close()
}
