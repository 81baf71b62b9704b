package cache

import (
	"context"
	"log"
	"time"

	"comercial_xpto/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when the key is not present in the cache.
var ErrCacheMiss = redis.Nil

// RedisClient implements interfaces.ICache over Redis. The catalog treats
// the cache as best-effort: a miss or an unavailable Redis only costs a
// recomputation.
type RedisClient struct {
	rdb *redis.Client
}

var _ interfaces.ICache = (*RedisClient)(nil)

// NewRedisClient connects to Redis at addr (e.g. "localhost:6379"). The
// connection is probed with a ping but a failure is not fatal.
func NewRedisClient(addr string) *RedisClient {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed addr=%s err=%v", addr, err)
	}

	return &RedisClient{rdb: rdb}
}

func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

func (c *RedisClient) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}
