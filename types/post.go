package types

import "time"

// 编辑帖子请求 仅限作者在编辑窗口内
type EditPostRequest struct {
	PostID  uint64 `json:"post_id,string" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=20000"`
}

// 帖子响应
type PostResponse struct {
	ID        uint64    `json:"id"`
	ThreadID  uint64    `json:"thread_id"`
	AuthorID  uint64    `json:"author_id"`
	Kind      int8      `json:"kind"`
	Content   string    `json:"content"`
	Editable  bool      `json:"editable"` // 当前用户是否仍可编辑
	CreatedAt time.Time `json:"created_at"`
}

// 用户发帖总数响应
type PostCountResponse struct {
	UserID uint64 `json:"user_id"`
	Count  int64  `json:"count"`
}
