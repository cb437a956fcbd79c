package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// FindByThread 查询主题下的帖子 按发布时间正序
func (d *PostDAO) FindByThread(ctx context.Context, threadID uint64, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountReplies 统计主题下的回复数 不含首帖 对账用
func (d *PostDAO) CountReplies(ctx context.Context, threadID uint64) (int64, error) {
	return d.Count(ctx, "thread_id = ? AND kind = ?", threadID, models.PostKindReply)
}

// UpdateContent 编辑帖子正文
func (d *PostDAO) UpdateContent(ctx context.Context, postID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Update("content", content).
		Error
}

// DeleteByThread 删除主题下全部帖子 随主题级联
func (d *PostDAO) DeleteByThread(ctx context.Context, tx *gorm.DB, threadID uint64) error {
	return tx.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Delete(&models.Post{}).Error
}
