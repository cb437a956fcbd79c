package models

import (
	"time"
)

// UserPostCount 用户发帖总数 首次发帖时懒创建
type UserPostCount struct {
	UserID    uint64    `gorm:"column:user_id;primaryKey" json:"user_id"`
	Count     int64     `gorm:"column:count;not null;default:0" json:"count"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserPostCount) TableName() string {
	return "user_post_counts"
}
