package service

import (
	"Agora/dao"
	"Agora/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("帖子不存在")
	ErrEditForbidden = errors.New("仅作者可在编辑时限内修改")
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	EditPost(ctx context.Context, req *types.EditPostRequest, actorID uint64) (*types.PostResponse, error)
	GetUserPostCount(ctx context.Context, userID uint64) (*types.PostCountResponse, error)
}

type PostService struct {
	PostDAO      *dao.PostDAO
	PostCountDAO *dao.PostCountDAO
	Policy       *EditPolicy
}

// EditPost 编辑帖子正文 超出编辑窗口或非作者一律拒绝
func (s *PostService) EditPost(ctx context.Context, req *types.EditPostRequest, actorID uint64) (*types.PostResponse, error) {
	post, err := s.PostDAO.FindById(ctx, req.PostID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	now := time.Now()
	if !s.Policy.CanEdit(post, actorID, now) {
		return nil, ErrEditForbidden
	}

	if err := s.PostDAO.UpdateContent(ctx, post.ID, req.Content); err != nil {
		return nil, err
	}

	post.Content = req.Content
	return postToResponse(post, s.Policy, actorID, now), nil
}

// GetUserPostCount 用户发帖总数 未发过帖按 0 返回
func (s *PostService) GetUserPostCount(ctx context.Context, userID uint64) (*types.PostCountResponse, error) {
	pc, err := s.PostCountDAO.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.PostCountResponse{UserID: userID, Count: pc.Count}, nil
}
