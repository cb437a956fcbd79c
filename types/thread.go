package types

import "time"

// 发主题帖请求 主题壳与首帖在同一逻辑操作里创建
type CreateThreadRequest struct {
	ForumID uint64 `json:"forum_id,string" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=100"`
	Content string `json:"content" binding:"required,min=1,max=20000"`
}

// 回帖请求
type CreateReplyRequest struct {
	ThreadID uint64 `json:"thread_id,string" binding:"required"`
	Content  string `json:"content" binding:"required,min=1,max=20000"`
}

// 删除主题请求
type DeleteThreadRequest struct {
	ThreadID uint64 `json:"thread_id,string" binding:"required"`
}

// 主题响应
type ThreadResponse struct {
	ID              uint64    `json:"id"`
	ForumID         uint64    `json:"forum_id"`
	Title           string    `json:"title"`
	AuthorID        uint64    `json:"author_id"`
	LastReplyID     *uint64   `json:"last_reply_id,omitempty"`
	ViewCount       int64     `json:"view_count"`
	ReplyCount      int64     `json:"reply_count"`
	SubscriberCount int64     `json:"subscriber_count"`
	CreatedAt       time.Time `json:"created_at"`
	LastModified    time.Time `json:"last_modified"`

	Posts []*PostResponse `json:"posts,omitempty"`
}
