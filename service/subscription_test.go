package service

import (
	"Agora/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	thread := env.mustCreateThread(t, root.ID, 100, "主题")

	require.NoError(t, env.subs.Subscribe(ctx, thread.ID, 200))
	require.NoError(t, env.subs.Subscribe(ctx, thread.ID, 200))

	var rows int64
	require.NoError(t, env.db.Model(&models.Subscription{}).
		Where("thread_id = ? AND user_id = ?", thread.ID, 200).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
	assert.EqualValues(t, 1, env.loadThread(t, thread.ID).SubscriberCount)
}

func TestUnsubscribe_NotSubscribedIsNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	thread := env.mustCreateThread(t, root.ID, 100, "主题")

	require.NoError(t, env.subs.Unsubscribe(ctx, thread.ID, 200))
	assert.EqualValues(t, 0, env.loadThread(t, thread.ID).SubscriberCount)
}

func TestSubscribe_Resubscribe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	thread := env.mustCreateThread(t, root.ID, 100, "主题")

	require.NoError(t, env.subs.Subscribe(ctx, thread.ID, 200))
	require.NoError(t, env.subs.Unsubscribe(ctx, thread.ID, 200))
	assert.EqualValues(t, 0, env.loadThread(t, thread.ID).SubscriberCount)

	// 退订后重新订阅 复用同一行记录 不新增
	require.NoError(t, env.subs.Subscribe(ctx, thread.ID, 200))

	var rows int64
	require.NoError(t, env.db.Model(&models.Subscription{}).
		Where("thread_id = ? AND user_id = ?", thread.ID, 200).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
	assert.EqualValues(t, 1, env.loadThread(t, thread.ID).SubscriberCount)
}

func TestSubscribe_Anonymous(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	thread := env.mustCreateThread(t, root.ID, 100, "主题")

	err := env.subs.Subscribe(ctx, thread.ID, 0)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// 匿名用户的订阅状态恒为未订阅
	subscribed, err := env.subs.IsSubscribed(ctx, thread.ID, 0)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestSubscribe_ThreadNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.subs.Subscribe(context.Background(), 404, 200)
	assert.ErrorIs(t, err, ErrThreadNotFound)
}

func TestIsSubscribed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	thread := env.mustCreateThread(t, root.ID, 100, "主题")

	subscribed, err := env.subs.IsSubscribed(ctx, thread.ID, 200)
	require.NoError(t, err)
	assert.False(t, subscribed)

	require.NoError(t, env.subs.Subscribe(ctx, thread.ID, 200))
	subscribed, err = env.subs.IsSubscribed(ctx, thread.ID, 200)
	require.NoError(t, err)
	assert.True(t, subscribed)

	require.NoError(t, env.subs.Unsubscribe(ctx, thread.ID, 200))
	subscribed, err = env.subs.IsSubscribed(ctx, thread.ID, 200)
	require.NoError(t, err)
	assert.False(t, subscribed)
}