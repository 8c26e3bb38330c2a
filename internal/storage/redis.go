package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV persists blobs in Redis without expiry. Stale per-day counter keys
// are never read again and simply remain behind; at the portal's scale that
// is acceptable.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV creates a Redis-backed KV.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *RedisKV) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
