package handler

import (
	"Agora/middleware"
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/service"
	"Agora/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	SubscriptionService service.ISubscriptionService
}

func (h *SubscriptionHandler) RegisterRouter(r gin.IRouter) {
	subs := r.Group("/v1/subscriptions")
	subs.POST("/subscribe", context.Wrap(h.Subscribe))
	subs.POST("/unsubscribe", context.Wrap(h.Unsubscribe))
	subs.GET("/status/:thread_id", context.Wrap(h.GetStatus))
}

// Subscribe 订阅主题 幂等
func (h *SubscriptionHandler) Subscribe(c *gin.Context) error {
	var req types.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := currentUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	err = h.SubscriptionService.Subscribe(c.Request.Context(), req.ThreadID, userID)
	middleware.ObservePropagation("subscription", err)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}

// Unsubscribe 退订主题 未订阅时静默成功
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) error {
	var req types.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := currentUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	err = h.SubscriptionService.Unsubscribe(c.Request.Context(), req.ThreadID, userID)
	middleware.ObservePropagation("subscription", err)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}

// GetStatus 查询订阅状态 匿名恒为未订阅
func (h *SubscriptionHandler) GetStatus(c *gin.Context) error {
	threadID, err := strconv.ParseUint(c.Param("thread_id"), 10, 64)
	if err != nil || threadID == 0 {
		return response.NewError(http.StatusBadRequest, "thread_id参数错误")
	}

	currentUser := uint64(0)
	if uid, err := currentUserID(c); err == nil {
		currentUser = uid
	}

	subscribed, err := h.SubscriptionService.IsSubscribed(c.Request.Context(), threadID, currentUser)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, types.SubscriptionStatusResponse{
		ThreadID:   threadID,
		Subscribed: subscribed,
	})
	return nil
}
