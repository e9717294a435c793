package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisRequestCacher stores each key's entries in a Redis list trimmed
// to MaxNumber, newest first.
type RedisRequestCacher struct {
	Client    *redis.Client
	MaxNumber int
}

func CreateRedisCache(client *redis.Client, maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{Client: client, MaxNumber: maxNumber}
}

func (cacher *RedisRequestCacher) Write(ctx context.Context, key string, value []byte) error {
	pushCmd := cacher.Client.LPush(ctx, key, value)

	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := cacher.Client.LTrim(ctx, key, 0, int64(cacher.MaxNumber-1))

	if trimCmd.Err() != nil {
		return trimCmd.Err()
	}

	return nil
}

func (cacher *RedisRequestCacher) Read(ctx context.Context, key string) ([]string, error) {
	return cacher.Client.LRange(ctx, key, 0, int64(cacher.MaxNumber-1)).Result()
}
