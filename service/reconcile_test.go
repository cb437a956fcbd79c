package service

import (
	"Agora/models"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeReplyCount_FixesDrift(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	child := env.mustCreateForum(t, "子版块", &root.ID)
	thread := env.mustCreateThread(t, child.ID, 100, "主题")
	env.mustCreateReply(t, thread.ID, 200)
	env.mustCreateReply(t, thread.ID, 300)

	// 人为制造计数漂移
	require.NoError(t, env.db.Model(&models.Forum{}).
		Where("id = ?", child.ID).
		UpdateColumn("reply_count", 99).Error)
	require.NoError(t, env.db.Model(&models.Thread{}).
		Where("id = ?", thread.ID).
		UpdateColumn("reply_count", 7).Error)

	require.NoError(t, env.reconcile.RecomputeReplyCount(ctx, root.ID))

	assert.EqualValues(t, 2, env.loadThread(t, thread.ID).ReplyCount)
	assert.EqualValues(t, 2, env.loadForum(t, child.ID).ReplyCount)
	assert.EqualValues(t, 2, env.loadForum(t, root.ID).ReplyCount)
}

func TestRecomputeReplyCount_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	thread := env.mustCreateThread(t, root.ID, 100, "主题")
	env.mustCreateReply(t, thread.ID, 200)

	require.NoError(t, env.reconcile.RecomputeReplyCount(ctx, root.ID))
	first := env.loadForum(t, root.ID).ReplyCount

	require.NoError(t, env.reconcile.RecomputeReplyCount(ctx, root.ID))
	assert.Equal(t, first, env.loadForum(t, root.ID).ReplyCount)
	assert.EqualValues(t, 1, first)
}

func TestRecomputeReplyCount_SubtreeLocked(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)

	lockName := fmt.Sprintf("reconcile:forum:%d", root.ID)
	ok, err := env.lock.Acquire(ctx, lockName, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	err = env.reconcile.RecomputeReplyCount(ctx, root.ID)
	assert.ErrorIs(t, err, ErrReconcileBusy)

	env.lock.Release(ctx, lockName)
	require.NoError(t, env.reconcile.RecomputeReplyCount(ctx, root.ID))
}

func TestRecomputeViewCount_OneLevelOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	child := env.mustCreateForum(t, "子版块", &root.ID)
	rootThread := env.mustCreateThread(t, root.ID, 100, "根版块主题")
	childThread := env.mustCreateThread(t, child.ID, 100, "子版块主题")

	require.NoError(t, env.db.Model(&models.Thread{}).
		Where("id = ?", rootThread.ID).
		UpdateColumn("view_count", 5).Error)
	require.NoError(t, env.db.Model(&models.Thread{}).
		Where("id = ?", childThread.ID).
		UpdateColumn("view_count", 11).Error)

	require.NoError(t, env.reconcile.RecomputeViewCount(ctx, root.ID))
	require.NoError(t, env.reconcile.RecomputeViewCount(ctx, child.ID))

	// 浏览数只汇总本版块直属主题 子版块的不上卷
	assert.EqualValues(t, 5, env.loadForum(t, root.ID).ViewCount)
	assert.EqualValues(t, 11, env.loadForum(t, child.ID).ViewCount)
}

func TestRecomputeSubscriberCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	thread := env.mustCreateThread(t, root.ID, 100, "主题")
	require.NoError(t, env.subs.Subscribe(ctx, thread.ID, 200))
	require.NoError(t, env.subs.Subscribe(ctx, thread.ID, 300))

	require.NoError(t, env.db.Model(&models.Thread{}).
		Where("id = ?", thread.ID).
		UpdateColumn("subscriber_count", 42).Error)

	require.NoError(t, env.reconcile.RecomputeSubscriberCount(ctx, thread.ID))
	assert.EqualValues(t, 2, env.loadThread(t, thread.ID).SubscriberCount)
}

func TestDeleteThread_ReconcilesChainAndClearsDanglingPointer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	child := env.mustCreateForum(t, "子版块", &root.ID)
	keep := env.mustCreateThread(t, child.ID, 100, "保留的主题")
	env.mustCreateReply(t, keep.ID, 200)
	doomed := env.mustCreateThread(t, child.ID, 100, "要删的主题")
	env.mustCreateReply(t, doomed.ID, 300)
	env.mustCreateReply(t, doomed.ID, 400)
	require.NoError(t, env.subs.Subscribe(ctx, doomed.ID, 300))

	require.NoError(t, env.threads.DeleteThread(ctx, doomed.ID))

	_, err := env.threads.GetThread(ctx, doomed.ID, 0, 10, 0)
	assert.ErrorIs(t, err, ErrThreadNotFound)

	var postCount int64
	require.NoError(t, env.db.Model(&models.Post{}).
		Where("thread_id = ?", doomed.ID).Count(&postCount).Error)
	assert.Zero(t, postCount)
	var subCount int64
	require.NoError(t, env.db.Model(&models.Subscription{}).
		Where("thread_id = ?", doomed.ID).Count(&subCount).Error)
	assert.Zero(t, subCount)

	// 祖先链回复数被对账修正 最新回复指针不再指向已删帖子
	assert.EqualValues(t, 1, env.loadForum(t, child.ID).ReplyCount)
	assert.EqualValues(t, 1, env.loadForum(t, root.ID).ReplyCount)
	if lr := env.loadForum(t, child.ID).LastReplyID; lr != nil {
		var exists int64
		require.NoError(t, env.db.Model(&models.Post{}).
			Where("id = ?", *lr).Count(&exists).Error)
		assert.EqualValues(t, 1, exists)
	}
}

func TestSweep_RecomputesEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	root := env.mustCreateForum(t, "综合讨论", nil)
	thread := env.mustCreateThread(t, root.ID, 100, "主题")
	env.mustCreateReply(t, thread.ID, 200)
	require.NoError(t, env.subs.Subscribe(ctx, thread.ID, 300))

	require.NoError(t, env.db.Model(&models.Forum{}).
		Where("id = ?", root.ID).
		UpdateColumns(map[string]any{"reply_count": 9, "view_count": 9}).Error)
	require.NoError(t, env.db.Model(&models.Thread{}).
		Where("id = ?", thread.ID).
		UpdateColumns(map[string]any{"reply_count": 9, "subscriber_count": 9}).Error)

	require.NoError(t, env.reconcile.Sweep(ctx))

	th := env.loadThread(t, thread.ID)
	assert.EqualValues(t, 1, th.ReplyCount)
	assert.EqualValues(t, 1, th.SubscriberCount)
	f := env.loadForum(t, root.ID)
	assert.EqualValues(t, 1, f.ReplyCount)
	assert.EqualValues(t, 0, f.ViewCount)
}