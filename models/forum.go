package models

import (
	"time"
)

// Forum 版块表
// parent_id 与 category_id 至多设置一个: 要么是子版块 要么挂在分类下
// view_count/reply_count 为冗余计数 由计数引擎增量维护 对账服务负责纠偏
type Forum struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"column:title;size:100;not null" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	ParentID     *uint64   `gorm:"column:parent_id;index:idx_forum_parent" json:"parent_id,omitempty"`
	CategoryID   *uint64   `gorm:"column:category_id;index:idx_forum_category" json:"category_id,omitempty"`
	LastReplyID  *uint64   `gorm:"column:last_reply_id" json:"last_reply_id,omitempty"` // 子树内最新回复 仅用于展示
	ViewCount    int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	ReplyCount   int64     `gorm:"column:reply_count;not null;default:0" json:"reply_count"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastModified time.Time `gorm:"column:last_modified" json:"last_modified"`
}

func (Forum) TableName() string {
	return "forums"
}
