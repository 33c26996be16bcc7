package cart

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisStorage keeps carts in Redis. Entries expire after ttl of inactivity,
// which is how abandoned carts go away.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage connects to addr, which may be a redis:// URL or a bare
// host:port, and pings it.
func NewRedisStorage(ctx context.Context, addr string, ttl time.Duration) (*RedisStorage, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			MaxRetries:   3,
		}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "ping redis %s", opts.Addr)
	}
	return NewRedisStorageFromClient(client, ttl), nil
}

func NewRedisStorageFromClient(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func (r *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}
	return data, nil
}

func (r *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	return errors.Wrapf(r.client.Set(ctx, key, data, r.ttl).Err(), "redis set %s", key)
}

func (r *RedisStorage) Close() error { return r.client.Close() }
