package config

import "github.com/redis/go-redis/v9"

// NewRedisClient builds a client for the configured Redis, or nil when
// no REDIS_ADDR is set and the in-memory backends should be used.
func NewRedisClient(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
