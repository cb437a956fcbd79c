package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
)

type ThreadDAO struct {
	Repo[models.Thread]
}

func NewThreadDAO(db *gorm.DB) *ThreadDAO {
	return &ThreadDAO{Repo: NewRepo[models.Thread](db)}
}

// FindByForum 查询版块下的主题 按最近更新倒序
func (d *ThreadDAO) FindByForum(ctx context.Context, forumID uint64, offset, limit int) ([]*models.Thread, error) {
	var threads []*models.Thread
	err := d.Db.WithContext(ctx).
		Where("forum_id = ?", forumID).
		Order("last_modified DESC").
		Offset(offset).
		Limit(limit).
		Find(&threads).Error
	return threads, err
}

// FindIDsByForum 查询版块下全部主题ID
func (d *ThreadDAO) FindIDsByForum(ctx context.Context, forumID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.Thread{}).
		Where("forum_id = ?", forumID).
		Pluck("id", &ids).Error
	return ids, err
}

// SumViewCount 汇总版块下所有主题的浏览数 对账用
func (d *ThreadDAO) SumViewCount(ctx context.Context, forumID uint64) (int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).Model(&models.Thread{}).
		Where("forum_id = ?", forumID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

// IncViewCount 浏览数自增 存储层原子累加
func (d *ThreadDAO) IncViewCount(ctx context.Context, threadID uint64, delta int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Thread{}).
		Where("id = ?", threadID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).
		Error
}

// WriteReplyCount 对账用 以真实统计值覆盖回复数
func (d *ThreadDAO) WriteReplyCount(ctx context.Context, threadID uint64, count int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Thread{}).
		Where("id = ?", threadID).
		UpdateColumn("reply_count", count).
		Error
}

// WriteSubscriberCount 以真实订阅数覆盖订阅计数
func (d *ThreadDAO) WriteSubscriberCount(ctx context.Context, threadID uint64, count int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Thread{}).
		Where("id = ?", threadID).
		UpdateColumn("subscriber_count", count).
		Error
}
