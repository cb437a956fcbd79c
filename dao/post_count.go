package dao

import (
	"Agora/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type PostCountDAO struct {
	Repo[models.UserPostCount]
}

func NewPostCountDAO(db *gorm.DB) *PostCountDAO {
	return &PostCountDAO{Repo: NewRepo[models.UserPostCount](db)}
}

// Incr 发帖总数自增 首次发帖懒创建
func (d *PostCountDAO) Incr(ctx context.Context, tx *gorm.DB, userID uint64, delta int64) error {
	now := time.Now()

	// 优先更新已有记录 避免 OnConflict 未命中导致不更新的情况
	res := tx.WithContext(ctx).
		Model(&models.UserPostCount{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"count":      gorm.Expr("count + ?", delta),
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// 不存在则插入
	pc := models.UserPostCount{
		UserID:    userID,
		Count:     delta,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return tx.WithContext(ctx).Create(&pc).Error
}

// GetByUser 查询用户发帖总数 无记录按 0 返回
func (d *PostCountDAO) GetByUser(ctx context.Context, userID uint64) (*models.UserPostCount, error) {
	var item models.UserPostCount
	err := d.Db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.UserID == 0 {
		return &models.UserPostCount{UserID: userID, Count: 0}, nil
	}
	return &item, nil
}
