package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindowCounter implements the fixed window as an INCR whose key
// expires at the window boundary, so counters shared across processes
// reset exactly like the in-memory ones.
type RedisWindowCounter struct {
	rdb    *redis.Client
	prefix string
}

func CreateRedisCounter(rdb *redis.Client) *RedisWindowCounter {
	return &RedisWindowCounter{rdb: rdb, prefix: "ratelimit"}
}

func (r *RedisWindowCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := r.prefix + ":" + key

	pipe := r.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// ExpireNX arms the window only on the first hit; later hits must
	// not push the boundary out.
	pipe.ExpireNX(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
