package models

import (
	"time"
)

// Category 版块分类表 支持父子分类树(parent_id 为空表示顶级分类)
type Category struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;size:100;not null" json:"title"`
	ParentID  *uint64   `gorm:"column:parent_id;index:idx_category_parent" json:"parent_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "forum_categories"
}
