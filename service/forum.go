package service

import (
	"Agora/dao"
	"Agora/models"
	"Agora/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrForumNotFound    = errors.New("版块不存在")
	ErrCategoryNotFound = errors.New("分类不存在")
	ErrForumParentXor   = errors.New("父版块与分类至多设置一个")
)

var _ IForumService = (*ForumService)(nil)

type IForumService interface {
	CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error)
	CreateForum(ctx context.Context, req *types.CreateForumRequest) (*models.Forum, error)
	ListRootCategories(ctx context.Context) ([]*models.Category, error)
	GetCategory(ctx context.Context, categoryID uint64) ([]*models.Category, []*models.Forum, error)
	GetForum(ctx context.Context, forumID uint64, offset, limit int) (*types.ForumResponse, error)
	ListRootForums(ctx context.Context) ([]*types.ForumResponse, error)
	RecordForumView(ctx context.Context, forumID uint64) error
}

type ForumService struct {
	DB          *gorm.DB
	CategoryDAO *dao.CategoryDAO
	ForumDAO    *dao.ForumDAO
	ThreadDAO   *dao.ThreadDAO
}

// CreateCategory 新建分类 父分类可选
func (s *ForumService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error) {
	if req.ParentID != nil {
		exist, err := s.CategoryDAO.IsExist(ctx, "id = ?", *req.ParentID)
		if err != nil {
			return nil, err
		}
		if !exist {
			return nil, ErrCategoryNotFound
		}
	}

	category := &models.Category{
		Title:    req.Title,
		ParentID: req.ParentID,
	}
	if err := s.CategoryDAO.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// CreateForum 新建版块
// 父版块与分类互斥 两者都传直接拒绝 不进传播引擎
func (s *ForumService) CreateForum(ctx context.Context, req *types.CreateForumRequest) (*models.Forum, error) {
	if req.ParentID != nil && req.CategoryID != nil {
		return nil, ErrForumParentXor
	}

	if req.ParentID != nil {
		// 父链走一遍深度校验 挡掉超深结构
		if err := s.checkForumDepth(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		exist, err := s.CategoryDAO.IsExist(ctx, "id = ?", *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exist {
			return nil, ErrCategoryNotFound
		}
	}

	forum := &models.Forum{
		Title:       req.Title,
		Description: req.Description,
		ParentID:    req.ParentID,
		CategoryID:  req.CategoryID,
	}
	if err := s.ForumDAO.Create(ctx, forum); err != nil {
		return nil, err
	}
	return forum, nil
}

// ListRootCategories 顶级分类列表 论坛首页入口
func (s *ForumService) ListRootCategories(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryDAO.FindRoots(ctx)
}

// GetCategory 分类详情 返回子分类与挂在分类下的版块
func (s *ForumService) GetCategory(ctx context.Context, categoryID uint64) ([]*models.Category, []*models.Forum, error) {
	exist, err := s.CategoryDAO.IsExist(ctx, "id = ?", categoryID)
	if err != nil {
		return nil, nil, err
	}
	if !exist {
		return nil, nil, ErrCategoryNotFound
	}

	subcategories, err := s.CategoryDAO.FindChildren(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	forums, err := s.ForumDAO.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	return subcategories, forums, nil
}

// GetForum 版块详情 含子版块与主题列表 访问会记一次浏览
func (s *ForumService) GetForum(ctx context.Context, forumID uint64, offset, limit int) (*types.ForumResponse, error) {
	forum, err := s.ForumDAO.FindById(ctx, forumID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrForumNotFound
		}
		return nil, err
	}

	subforums, err := s.ForumDAO.FindSubforums(ctx, forumID)
	if err != nil {
		return nil, err
	}
	threads, err := s.ThreadDAO.FindByForum(ctx, forumID, offset, limit)
	if err != nil {
		return nil, err
	}

	if err := s.ForumDAO.IncViewCount(ctx, forumID, 1); err != nil {
		return nil, err
	}

	resp := forumToResponse(forum)
	resp.Subforums = make([]*types.ForumResponse, 0, len(subforums))
	for _, f := range subforums {
		resp.Subforums = append(resp.Subforums, forumToResponse(f))
	}
	resp.Threads = make([]*types.ThreadResponse, 0, len(threads))
	for _, t := range threads {
		resp.Threads = append(resp.Threads, threadToResponse(t))
	}
	return resp, nil
}

// ListRootForums 顶层版块列表
func (s *ForumService) ListRootForums(ctx context.Context) ([]*types.ForumResponse, error) {
	forums, err := s.ForumDAO.FindRoots(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*types.ForumResponse, 0, len(forums))
	for _, f := range forums {
		result = append(result, forumToResponse(f))
	}
	return result, nil
}

// RecordForumView 版块浏览数+1 不向父链传播
func (s *ForumService) RecordForumView(ctx context.Context, forumID uint64) error {
	exist, err := s.ForumDAO.IsExist(ctx, "id = ?", forumID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrForumNotFound
	}
	return s.ForumDAO.IncViewCount(ctx, forumID, 1)
}

// checkForumDepth 自 parentID 起沿父链向上校验深度
func (s *ForumService) checkForumDepth(ctx context.Context, parentID uint64) error {
	current := parentID
	for depth := 0; ; depth++ {
		if depth >= maxForumDepth {
			return ErrForumChainTooDeep
		}
		forum, err := s.ForumDAO.FindById(ctx, current)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrForumNotFound
			}
			return err
		}
		if forum.ParentID == nil {
			return nil
		}
		current = *forum.ParentID
	}
}

func forumToResponse(f *models.Forum) *types.ForumResponse {
	return &types.ForumResponse{
		ID:           f.ID,
		Title:        f.Title,
		Description:  f.Description,
		ParentID:     f.ParentID,
		CategoryID:   f.CategoryID,
		LastReplyID:  f.LastReplyID,
		ViewCount:    f.ViewCount,
		ReplyCount:   f.ReplyCount,
		LastModified: f.LastModified,
	}
}
