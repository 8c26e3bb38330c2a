package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisKV(t *testing.T) *RedisKV {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisKV(client)
}

func TestRedisKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newTestRedisKV(t)

	require.NoError(t, kv.Set(ctx, "members", "| u | p | s | e |"))

	val, err := kv.Get(ctx, "members")
	require.NoError(t, err)
	assert.Equal(t, "| u | p | s | e |", val)
}

func TestRedisKVMissingKey(t *testing.T) {
	ctx := context.Background()
	kv := newTestRedisKV(t)

	_, err := kv.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisKVDelete(t *testing.T) {
	ctx := context.Background()
	kv := newTestRedisKV(t)

	require.NoError(t, kv.Set(ctx, "logs", "blob"))
	require.NoError(t, kv.Delete(ctx, "logs"))

	_, err := kv.Get(ctx, "logs")
	assert.ErrorIs(t, err, ErrNotFound)
}
