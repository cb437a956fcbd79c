package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/models"
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// 版块树深度上限 祖先链出现环或超深结构时中断传播
const maxForumDepth = 32

var ErrForumChainTooDeep = errors.New("版块层级过深或存在环")

// PropagationService 计数传播引擎
// 新回帖/新主题/订阅变更落库时同步更新冗余计数
// 所有方法必须在创建记录的同一事务内调用 计数要么全部生效要么全部回滚
type PropagationService struct {
	Config       *config.Config
	PostCountDAO *dao.PostCountDAO
	Sink         ActivitySink
}

// RecordNewReply 记录一条新回帖
// 1. 主题回复数+1 并刷新最新回复指针
// 2. 沿版块父链一路向上 每级回复数+1 并刷新最新回复指针
// 3. 作者发帖总数+1(懒创建)
// 计数一律走存储层原子累加 并发回帖不会丢更新
func (s *PropagationService) RecordNewReply(ctx context.Context, tx *gorm.DB, thread *models.Thread, post *models.Post) error {
	err := tx.WithContext(ctx).
		Model(&models.Thread{}).
		Where("id = ?", thread.ID).
		UpdateColumns(map[string]any{
			"reply_count":   gorm.Expr("reply_count + ?", 1),
			"last_modified": post.CreatedAt,
			"last_reply_id": post.ID,
		}).Error
	if err != nil {
		return err
	}

	if err := s.walkForumChain(ctx, tx, thread.ForumID, post, true); err != nil {
		return err
	}

	return s.incrAuthorPostCount(ctx, tx, post)
}

// RecordNewThread 记录一个新主题(含首帖)
// 主题计数取创建默认值 首帖不计入 reply_count
// 版块父链只刷新最新回复指针与修改时间 不加回复数
func (s *PropagationService) RecordNewThread(ctx context.Context, tx *gorm.DB, thread *models.Thread, post *models.Post) error {
	err := tx.WithContext(ctx).
		Model(&models.Thread{}).
		Where("id = ?", thread.ID).
		UpdateColumns(map[string]any{
			"last_modified": post.CreatedAt,
			"last_reply_id": post.ID,
		}).Error
	if err != nil {
		return err
	}

	if err := s.walkForumChain(ctx, tx, thread.ForumID, post, false); err != nil {
		return err
	}

	return s.incrAuthorPostCount(ctx, tx, post)
}

// RecordSubscriptionChange 订阅变更后重算主题订阅数
// 不做增量 直接按有效订阅行数覆盖 订阅数不向版块上卷
func (s *PropagationService) RecordSubscriptionChange(ctx context.Context, tx *gorm.DB, threadID uint64) error {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("thread_id = ? AND status = 1", threadID).
		Count(&count).Error
	if err != nil {
		return err
	}

	return tx.WithContext(ctx).
		Model(&models.Thread{}).
		Where("id = ?", threadID).
		UpdateColumn("subscriber_count", count).
		Error
}

// EmitThreadCreated 新主题活动事件 事务提交后调用
func (s *PropagationService) EmitThreadCreated(thread *models.Thread) {
	dispatchActivity(s.Sink, ActivityKindThread, map[string]any{
		"user":   strconv.FormatUint(thread.AuthorID, 10),
		"thread": strconv.FormatUint(thread.ID, 10),
	})
}

// EmitPostCreated 新回帖活动事件 事务提交后调用
// 主题首帖不发 forum_post 事件(主题创建路径已发过 forum_thread)
// 一次用户动作只产生一条事件
func (s *PropagationService) EmitPostCreated(post *models.Post) {
	if post.IsFirst() {
		return
	}
	dispatchActivity(s.Sink, ActivityKindPost, map[string]any{
		"user": strconv.FormatUint(post.AuthorID, 10),
		"post": strconv.FormatUint(post.ID, 10),
	})
}

// walkForumChain 沿版块父链向上传播
// incrReply 为 true 时每级回复数+1 否则只刷新最新回复指针
func (s *PropagationService) walkForumChain(ctx context.Context, tx *gorm.DB, forumID uint64, post *models.Post, incrReply bool) error {
	current := forumID

	for depth := 0; ; depth++ {
		if depth >= maxForumDepth {
			return ErrForumChainTooDeep
		}

		updates := map[string]any{
			"last_modified": post.CreatedAt,
			"last_reply_id": post.ID,
		}
		if incrReply {
			updates["reply_count"] = gorm.Expr("reply_count + ?", 1)
		}

		res := tx.WithContext(ctx).
			Model(&models.Forum{}).
			Where("id = ?", current).
			UpdateColumns(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrForumNotFound
		}

		var parent *uint64
		err := tx.WithContext(ctx).
			Model(&models.Forum{}).
			Where("id = ?", current).
			Select("parent_id").
			Scan(&parent).Error
		if err != nil {
			return err
		}
		if parent == nil {
			return nil
		}
		current = *parent
	}
}

func (s *PropagationService) incrAuthorPostCount(ctx context.Context, tx *gorm.DB, post *models.Post) error {
	// 首帖是否计入发帖总数由配置决定 原始产品语义不明确
	if post.IsFirst() && !s.Config.Forum.CountThreadPost {
		return nil
	}
	return s.PostCountDAO.Incr(ctx, tx, post.AuthorID, 1)
}
