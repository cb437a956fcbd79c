package dao

import (
	"Agora/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.Subscription](db)}
}

// IsSubscribed 检查用户是否订阅了主题
func (d *SubscriptionDAO) IsSubscribed(ctx context.Context, threadID, userID uint64) (bool, error) {
	var sub models.Subscription
	err := d.Db.WithContext(ctx).
		Where("thread_id = ? AND user_id = ? AND status = 1", threadID, userID).
		First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetStatus 设置订阅状态(如不存在则创建)
func (d *SubscriptionDAO) SetStatus(ctx context.Context, tx *gorm.DB, threadID, userID uint64, status int) error {
	now := time.Now()

	// 优先更新已有记录 (thread_id, user_id) 唯一约束保证至多一行
	res := tx.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("thread_id = ? AND user_id = ?", threadID, userID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// 不存在则插入
	sub := models.Subscription{
		ThreadID:  threadID,
		UserID:    userID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return tx.WithContext(ctx).Create(&sub).Error
}

// CountActive 统计主题的有效订阅数
func (d *SubscriptionDAO) CountActive(ctx context.Context, tx *gorm.DB, threadID uint64) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("thread_id = ? AND status = 1", threadID).
		Count(&count).Error
	return count, err
}

// DeleteByThread 删除主题下全部订阅 随主题级联
func (d *SubscriptionDAO) DeleteByThread(ctx context.Context, tx *gorm.DB, threadID uint64) error {
	return tx.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Delete(&models.Subscription{}).Error
}
