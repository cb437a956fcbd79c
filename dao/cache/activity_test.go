package cache

import (
	"Agora/config"
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestActivityStorage_Publish(t *testing.T) {
	_, rds := newTestRedis(t)
	ctx := context.Background()

	storage := NewActivityStorage(rds, &config.Config{
		Forum: &config.Forum{ActivityStream: "agora:activity"},
	})

	err := storage.Publish(ctx, "forum_post", map[string]any{
		"user": "100",
		"post": "12345",
	})
	require.NoError(t, err)

	entries, err := rds.XRange(ctx, "agora:activity", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	values := entries[0].Values
	assert.Equal(t, "forum_post", values["kind"])
	assert.NotEmpty(t, values["id"])

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(values["payload"].(string)), &payload))
	assert.Equal(t, "100", payload["user"])
	assert.Equal(t, "12345", payload["post"])
}

func TestActivityStorage_PublishMultiple(t *testing.T) {
	_, rds := newTestRedis(t)
	ctx := context.Background()

	storage := NewActivityStorage(rds, &config.Config{
		Forum: &config.Forum{ActivityStream: "agora:activity"},
	})

	require.NoError(t, storage.Publish(ctx, "forum_thread", map[string]any{"user": "1"}))
	require.NoError(t, storage.Publish(ctx, "forum_post", map[string]any{"user": "2"}))

	length, err := rds.XLen(ctx, "agora:activity").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 2, length)
}