package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/templink/internal/shortener"
)

// RedisStore is a Redis implementation of shortener.MappingStore. Records
// expire server-side through the TTL set on write; nothing here deletes keys.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed mapping store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) PutForward(ctx context.Context, code, url string, ttl time.Duration) error {
	if err := r.client.Set(ctx, forwardPrefix+code, url, ttl).Err(); err != nil {
		return storeErr(err)
	}

	return nil
}

func (r *RedisStore) GetForward(ctx context.Context, code string) (string, bool, error) {
	return r.get(ctx, forwardPrefix+code)
}

func (r *RedisStore) PutReverse(ctx context.Context, url, code string, ttl time.Duration) error {
	if err := r.client.Set(ctx, reversePrefix+url, code, ttl).Err(); err != nil {
		return storeErr(err)
	}

	return nil
}

func (r *RedisStore) GetReverse(ctx context.Context, url string) (string, bool, error) {
	return r.get(ctx, reversePrefix+url)
}

func (r *RedisStore) ExistsForward(ctx context.Context, code string) (bool, error) {
	n, err := r.client.Exists(ctx, forwardPrefix+code).Result()
	if err != nil {
		return false, storeErr(err)
	}

	return n > 0, nil
}

func (r *RedisStore) get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, storeErr(err)
	}

	return val, true, nil
}

// Ping checks backend connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Compile-time check.
var _ shortener.MappingStore = (*RedisStore)(nil)
