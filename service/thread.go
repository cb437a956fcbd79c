package service

import (
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/snowflake"
	"Agora/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrThreadNotFound = errors.New("主题不存在")

var _ IThreadService = (*ThreadService)(nil)

type IThreadService interface {
	CreateThread(ctx context.Context, req *types.CreateThreadRequest, userID uint64) (*types.ThreadResponse, error)
	CreateReply(ctx context.Context, req *types.CreateReplyRequest, userID uint64) (*types.PostResponse, error)
	GetThread(ctx context.Context, threadID uint64, offset, limit int, currentUserID uint64) (*types.ThreadResponse, error)
	RecordThreadView(ctx context.Context, threadID uint64) error
	DeleteThread(ctx context.Context, threadID uint64) error
}

type ThreadService struct {
	DB              *gorm.DB
	ForumDAO        *dao.ForumDAO
	ThreadDAO       *dao.ThreadDAO
	PostDAO         *dao.PostDAO
	SubscriptionDAO *dao.SubscriptionDAO
	Propagation     *PropagationService
	Reconcile       IReconcileService
	Policy          *EditPolicy
}

// CreateThread 发主题帖 主题壳与首帖在同一事务里创建
func (s *ThreadService) CreateThread(ctx context.Context, req *types.CreateThreadRequest, userID uint64) (*types.ThreadResponse, error) {
	// 先校验版块存在 计数开始前就挡掉非法请求
	if _, err := s.ForumDAO.FindById(ctx, req.ForumID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrForumNotFound
		}
		return nil, err
	}

	now := time.Now()
	thread := &models.Thread{
		ID:           uint64(snowflake.GenID()),
		ForumID:      req.ForumID,
		Title:        req.Title,
		AuthorID:     userID,
		CreatedAt:    now,
		LastModified: now,
	}
	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		ThreadID:  thread.ID,
		AuthorID:  userID,
		Kind:      models.PostKindThread,
		Content:   req.Content,
		CreatedAt: now,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(thread).Error; err != nil {
			return err
		}
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return s.Propagation.RecordNewThread(ctx, tx, thread, post)
	})
	if err != nil {
		return nil, err
	}

	s.Propagation.EmitThreadCreated(thread)

	resp := threadToResponse(thread)
	resp.LastReplyID = &post.ID
	resp.Posts = []*types.PostResponse{postToResponse(post, s.Policy, userID, now)}
	return resp, nil
}

// CreateReply 回帖 帖子落库与计数传播在同一事务
func (s *ThreadService) CreateReply(ctx context.Context, req *types.CreateReplyRequest, userID uint64) (*types.PostResponse, error) {
	thread, err := s.ThreadDAO.FindById(ctx, req.ThreadID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		ThreadID:  thread.ID,
		AuthorID:  userID,
		Kind:      models.PostKindReply,
		Content:   req.Content,
		CreatedAt: now,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return s.Propagation.RecordNewReply(ctx, tx, thread, post)
	})
	if err != nil {
		return nil, err
	}

	s.Propagation.EmitPostCreated(post)

	return postToResponse(post, s.Policy, userID, now), nil
}

// GetThread 主题详情 帖子按时间正序分页 访问会记一次浏览
func (s *ThreadService) GetThread(ctx context.Context, threadID uint64, offset, limit int, currentUserID uint64) (*types.ThreadResponse, error) {
	thread, err := s.ThreadDAO.FindById(ctx, threadID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}

	posts, err := s.PostDAO.FindByThread(ctx, threadID, offset, limit)
	if err != nil {
		return nil, err
	}

	if err := s.RecordThreadView(ctx, threadID); err != nil {
		return nil, err
	}

	now := time.Now()
	resp := threadToResponse(thread)
	resp.Posts = make([]*types.PostResponse, 0, len(posts))
	for _, p := range posts {
		resp.Posts = append(resp.Posts, postToResponse(p, s.Policy, currentUserID, now))
	}
	return resp, nil
}

// RecordThreadView 主题浏览数+1 并带动所属版块+1
// 浏览数只上卷一级 不沿父链传播 与回复数的全链路传播不同
func (s *ThreadService) RecordThreadView(ctx context.Context, threadID uint64) error {
	thread, err := s.ThreadDAO.FindById(ctx, threadID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrThreadNotFound
		}
		return err
	}

	if err := s.ThreadDAO.IncViewCount(ctx, threadID, 1); err != nil {
		return err
	}
	return s.ForumDAO.IncViewCount(ctx, thread.ForumID, 1)
}

// DeleteThread 删除主题 帖子与订阅级联删除
// 删除后对所属版块链发起一次对账 修正祖先回复数与悬空的最新回复指针
func (s *ThreadService) DeleteThread(ctx context.Context, threadID uint64) error {
	thread, err := s.ThreadDAO.FindById(ctx, threadID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrThreadNotFound
		}
		return err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint64
		if err := tx.Model(&models.Post{}).
			Where("thread_id = ?", threadID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if err := s.PostDAO.DeleteByThread(ctx, tx, threadID); err != nil {
			return err
		}
		if err := s.SubscriptionDAO.DeleteByThread(ctx, tx, threadID); err != nil {
			return err
		}
		if err := tx.Delete(&models.Thread{}, threadID).Error; err != nil {
			return err
		}

		if len(postIDs) == 0 {
			return nil
		}
		// 悬空的最新回复指针置空 展示层按空处理
		return tx.Model(&models.Forum{}).
			Where("last_reply_id IN ?", postIDs).
			UpdateColumn("last_reply_id", nil).Error
	})
	if err != nil {
		return err
	}

	return s.Reconcile.ReconcileForumChain(ctx, thread.ForumID)
}

func threadToResponse(t *models.Thread) *types.ThreadResponse {
	return &types.ThreadResponse{
		ID:              t.ID,
		ForumID:         t.ForumID,
		Title:           t.Title,
		AuthorID:        t.AuthorID,
		LastReplyID:     t.LastReplyID,
		ViewCount:       t.ViewCount,
		ReplyCount:      t.ReplyCount,
		SubscriberCount: t.SubscriberCount,
		CreatedAt:       t.CreatedAt,
		LastModified:    t.LastModified,
	}
}

func postToResponse(p *models.Post, policy *EditPolicy, actorID uint64, now time.Time) *types.PostResponse {
	return &types.PostResponse{
		ID:        p.ID,
		ThreadID:  p.ThreadID,
		AuthorID:  p.AuthorID,
		Kind:      p.Kind,
		Content:   p.Content,
		Editable:  policy.CanEdit(p, actorID, now),
		CreatedAt: p.CreatedAt,
	}
}
