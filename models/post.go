package models

import (
	"time"
)

// 帖子类型: 1-主题首帖 2-回复
const (
	PostKindThread int8 = 1
	PostKindReply  int8 = 2
)

// Post 帖子表 首帖与回复同表存储 用 kind 区分
type Post struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	ThreadID  uint64    `gorm:"column:thread_id;not null;index:idx_post_thread_kind" json:"thread_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_post_author" json:"author_id"`
	Kind      int8      `gorm:"column:kind;not null;default:2;index:idx_post_thread_kind" json:"kind"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string {
	return "forum_posts"
}

// IsFirst 是否主题首帖
func (p *Post) IsFirst() bool {
	return p.Kind == PostKindThread
}
