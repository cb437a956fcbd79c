package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/models"
	"Agora/pkg/log"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 单个版块子树的对账锁时长
const reconcileLockExpire = 5 * time.Minute

var ErrReconcileBusy = errors.New("该版块正在对账中 请稍后重试")

var _ IReconcileService = (*ReconcileService)(nil)

// IReconcileService 对账服务 按真实子记录重算冗余计数 修复增量漂移
// 所有重算都是幂等的 重复执行结果不变
type IReconcileService interface {
	RecomputeViewCount(ctx context.Context, forumID uint64) error
	RecomputeReplyCount(ctx context.Context, forumID uint64) error
	RecomputeSubscriberCount(ctx context.Context, threadID uint64) error
	ReconcileForumChain(ctx context.Context, forumID uint64) error
	Sweep(ctx context.Context) error
	Run(ctx context.Context)
}

type ReconcileService struct {
	DB              *gorm.DB
	Config          *config.Config
	ForumDAO        *dao.ForumDAO
	ThreadDAO       *dao.ThreadDAO
	PostDAO         *dao.PostDAO
	SubscriptionDAO *dao.SubscriptionDAO
	Lock            *cache.LockStorage
}

// RecomputeViewCount 重算版块浏览数
// 只汇总本版块下主题的浏览数 不递归子版块 浏览数本就不跨版块上卷
func (s *ReconcileService) RecomputeViewCount(ctx context.Context, forumID uint64) error {
	total, err := s.ThreadDAO.SumViewCount(ctx, forumID)
	if err != nil {
		return err
	}
	return s.ForumDAO.WriteViewCount(ctx, forumID, total)
}

// RecomputeReplyCount 自底向上重算版块子树的回复数
// 先把每个子版块和主题算正确 再累加成自己的值
// 同一子树加分布式锁 避免两次对账互相踩 错过锁可直接重跑
func (s *ReconcileService) RecomputeReplyCount(ctx context.Context, forumID uint64) error {
	lockName := fmt.Sprintf("reconcile:forum:%d", forumID)
	ok, err := s.Lock.Acquire(ctx, lockName, reconcileLockExpire)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReconcileBusy
	}
	defer s.Lock.Release(ctx, lockName)

	_, err = s.recomputeReplySubtree(ctx, forumID, 0)
	return err
}

// RecomputeSubscriberCount 按有效订阅行数覆盖主题订阅计数
func (s *ReconcileService) RecomputeSubscriberCount(ctx context.Context, threadID uint64) error {
	count, err := s.SubscriptionDAO.CountActive(ctx, s.DB, threadID)
	if err != nil {
		return err
	}
	return s.ThreadDAO.WriteSubscriberCount(ctx, threadID, count)
}

// ReconcileForumChain 从指定版块沿父链找到根 再对整棵子树重算
// 删除主题后的计数修复走这里
func (s *ReconcileService) ReconcileForumChain(ctx context.Context, forumID uint64) error {
	root := forumID
	for depth := 0; ; depth++ {
		if depth >= maxForumDepth {
			return ErrForumChainTooDeep
		}
		forum, err := s.ForumDAO.FindById(ctx, root)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrForumNotFound
			}
			return err
		}
		if forum.ParentID == nil {
			break
		}
		root = *forum.ParentID
	}

	if err := s.RecomputeReplyCount(ctx, root); err != nil {
		return err
	}
	return s.RecomputeViewCount(ctx, forumID)
}

// Sweep 全量对账一轮: 所有根版块的回复数子树 + 每个版块的浏览数 + 每个主题的订阅数
func (s *ReconcileService) Sweep(ctx context.Context) error {
	roots, err := s.ForumDAO.FindRoots(ctx)
	if err != nil {
		return err
	}
	for _, root := range roots {
		if err := s.RecomputeReplyCount(ctx, root.ID); err != nil {
			if err == ErrReconcileBusy {
				log.L.Info("reconcile skipped, subtree locked", zap.Uint64("forum_id", root.ID))
				continue
			}
			return err
		}
	}

	var forumIDs []uint64
	if err := s.DB.WithContext(ctx).Model(&models.Forum{}).Pluck("id", &forumIDs).Error; err != nil {
		return err
	}
	for _, id := range forumIDs {
		if err := s.RecomputeViewCount(ctx, id); err != nil {
			return err
		}
	}

	var threadIDs []uint64
	if err := s.DB.WithContext(ctx).Model(&models.Thread{}).Pluck("id", &threadIDs).Error; err != nil {
		return err
	}
	for _, id := range threadIDs {
		if err := s.RecomputeSubscriberCount(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// Run 周期性全量对账 ctx 结束即退出 周期为 0 时不启动
func (s *ReconcileService) Run(ctx context.Context) {
	interval := time.Duration(s.Config.Forum.ReconcileIntervalSeconds) * time.Second
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.L.Info("reconcile loop started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			log.L.Info("reconcile loop stopped")
			return
		case <-ticker.C:
			start := time.Now()
			if err := s.Sweep(ctx); err != nil {
				log.L.Error("reconcile sweep failed", zap.Error(err))
				continue
			}
			log.L.Info("reconcile sweep done", zap.Duration("cost", time.Since(start)))
		}
	}
}

// recomputeReplySubtree 递归重算 返回该版块子树的回复总数
func (s *ReconcileService) recomputeReplySubtree(ctx context.Context, forumID uint64, depth int) (int64, error) {
	if depth >= maxForumDepth {
		return 0, ErrForumChainTooDeep
	}

	var total int64

	subforumIDs, err := s.ForumDAO.FindSubforumIDs(ctx, forumID)
	if err != nil {
		return 0, err
	}
	for _, id := range subforumIDs {
		count, err := s.recomputeReplySubtree(ctx, id, depth+1)
		if err != nil {
			return 0, err
		}
		total += count
	}

	threadIDs, err := s.ThreadDAO.FindIDsByForum(ctx, forumID)
	if err != nil {
		return 0, err
	}
	for _, id := range threadIDs {
		count, err := s.PostDAO.CountReplies(ctx, id)
		if err != nil {
			return 0, err
		}
		if err := s.ThreadDAO.WriteReplyCount(ctx, id, count); err != nil {
			return 0, err
		}
		total += count
	}

	if err := s.ForumDAO.WriteReplyCount(ctx, forumID, total); err != nil {
		return 0, err
	}
	return total, nil
}
