package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBlobCache caches rendered artifacts in Redis under a key prefix with a TTL.
type RedisBlobCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisBlobCache creates a cache storing values under prefix. A zero ttl keeps entries forever.
func NewRedisBlobCache(client *redis.Client, prefix string, ttl time.Duration) *RedisBlobCache {
	return &RedisBlobCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get returns the cached value for key. A miss is reported as ok == false with a nil error.
func (r *RedisBlobCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return data, true, nil
}

func (r *RedisBlobCache) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, r.ttl).Err()
}

// Shutdown closes the underlying client.
func (r *RedisBlobCache) Shutdown() error {
	return r.client.Close()
}
