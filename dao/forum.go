package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
)

type ForumDAO struct {
	Repo[models.Forum]
}

func NewForumDAO(db *gorm.DB) *ForumDAO {
	return &ForumDAO{Repo: NewRepo[models.Forum](db)}
}

// FindRoots 查询根版块(既无父版块也无分类 或仅挂在分类下)
func (d *ForumDAO) FindRoots(ctx context.Context) ([]*models.Forum, error) {
	var items []*models.Forum
	err := d.Db.WithContext(ctx).Where("parent_id IS NULL").Order("id ASC").Find(&items).Error
	return items, err
}

// FindByCategory 查询分类下的版块
func (d *ForumDAO) FindByCategory(ctx context.Context, categoryID uint64) ([]*models.Forum, error) {
	return d.FindAllByWhere(ctx, "category_id = ?", categoryID)
}

// FindSubforums 查询直接子版块
func (d *ForumDAO) FindSubforums(ctx context.Context, parentID uint64) ([]*models.Forum, error) {
	return d.FindAllByWhere(ctx, "parent_id = ?", parentID)
}

// FindSubforumIDs 查询直接子版块ID
func (d *ForumDAO) FindSubforumIDs(ctx context.Context, parentID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.Forum{}).
		Where("parent_id = ?", parentID).
		Pluck("id", &ids).Error
	return ids, err
}

// IncViewCount 浏览数自增 存储层原子累加
func (d *ForumDAO) IncViewCount(ctx context.Context, forumID uint64, delta int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Forum{}).
		Where("id = ?", forumID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).
		Error
}

// WriteViewCount 对账用 以真实统计值覆盖浏览数
func (d *ForumDAO) WriteViewCount(ctx context.Context, forumID uint64, count int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Forum{}).
		Where("id = ?", forumID).
		UpdateColumn("view_count", count).
		Error
}

// WriteReplyCount 对账用 以真实统计值覆盖回复数
// 不碰 last_reply_id/last_modified 那两个字段只走增量路径
func (d *ForumDAO) WriteReplyCount(ctx context.Context, forumID uint64, count int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Forum{}).
		Where("id = ?", forumID).
		UpdateColumn("reply_count", count).
		Error
}
