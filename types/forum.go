package types

import "time"

// 创建分类请求
type CreateCategoryRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=100"`
	ParentID *uint64 `json:"parent_id,string,omitempty"`
}

// 创建版块请求 parent_id 与 category_id 至多传一个
type CreateForumRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"max=2000"`
	ParentID    *uint64 `json:"parent_id,string,omitempty"`
	CategoryID  *uint64 `json:"category_id,string,omitempty"`
}

// 版块详情响应
type ForumResponse struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ParentID     *uint64   `json:"parent_id,omitempty"`
	CategoryID   *uint64   `json:"category_id,omitempty"`
	LastReplyID  *uint64   `json:"last_reply_id,omitempty"`
	ViewCount    int64     `json:"view_count"`
	ReplyCount   int64     `json:"reply_count"`
	LastModified time.Time `json:"last_modified"`

	Subforums []*ForumResponse  `json:"subforums,omitempty"`
	Threads   []*ThreadResponse `json:"threads,omitempty"`
}
