package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockStorage_AcquireRelease(t *testing.T) {
	_, rds := newTestRedis(t)
	ctx := context.Background()
	lock := NewLockStorage(rds)

	ok, err := lock.Acquire(ctx, "reconcile:forum:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// 同名锁第二次拿不到
	ok, err = lock.Acquire(ctx, "reconcile:forum:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// 不同名锁互不影响
	ok, err = lock.Acquire(ctx, "reconcile:forum:2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	lock.Release(ctx, "reconcile:forum:1")
	ok, err = lock.Acquire(ctx, "reconcile:forum:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockStorage_Expire(t *testing.T) {
	mr, rds := newTestRedis(t)
	ctx := context.Background()
	lock := NewLockStorage(rds)

	ok, err := lock.Acquire(ctx, "reconcile:forum:1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// 过期后可重新获取
	mr.FastForward(2 * time.Minute)
	ok, err = lock.Acquire(ctx, "reconcile:forum:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}