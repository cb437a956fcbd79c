package models

import (
	"time"
)

// Subscription 主题订阅表 (thread_id, user_id) 唯一
type Subscription struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ThreadID  uint64    `gorm:"column:thread_id;not null;index:idx_thread_user,unique" json:"thread_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_thread_user,unique" json:"user_id"`
	Status    int       `gorm:"column:status;not null;default:1" json:"status"` // 1:订阅中 0:已取消
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Subscription) TableName() string {
	return "forum_subscriptions"
}
