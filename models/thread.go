package models

import (
	"time"
)

// Thread 主题帖表
// last_reply_id 仅在主题刚建好、首帖尚未落库的瞬间为空
type Thread struct {
	ID              uint64    `gorm:"column:id;primaryKey" json:"id"`
	ForumID         uint64    `gorm:"column:forum_id;not null;index:idx_thread_forum" json:"forum_id"`
	Title           string    `gorm:"column:title;size:100;not null" json:"title"`
	AuthorID        uint64    `gorm:"column:author_id;not null;index:idx_thread_author" json:"author_id"`
	LastReplyID     *uint64   `gorm:"column:last_reply_id" json:"last_reply_id,omitempty"`
	ViewCount       int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	ReplyCount      int64     `gorm:"column:reply_count;not null;default:0" json:"reply_count"`
	SubscriberCount int64     `gorm:"column:subscriber_count;not null;default:0" json:"subscriber_count"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastModified    time.Time `gorm:"column:last_modified" json:"last_modified"`
}

func (Thread) TableName() string {
	return "forum_threads"
}
