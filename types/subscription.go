package types

// 订阅/退订请求
type SubscribeRequest struct {
	ThreadID uint64 `json:"thread_id,string" binding:"required"`
}

// 订阅状态响应
type SubscriptionStatusResponse struct {
	ThreadID   uint64 `json:"thread_id"`
	Subscribed bool   `json:"subscribed"`
}
