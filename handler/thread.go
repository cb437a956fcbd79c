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

type ThreadHandler struct {
	ThreadService service.IThreadService
}

func (h *ThreadHandler) RegisterRouter(r gin.IRouter) {
	threads := r.Group("/v1/threads")
	threads.POST("/create", context.Wrap(h.CreateThread)) // 发主题帖
	threads.POST("/reply", context.Wrap(h.CreateReply))   // 回帖
	threads.GET("/:id", context.Wrap(h.GetThread))
	threads.POST("/:id/view", context.Wrap(h.RecordView))
	threads.POST("/delete", context.Wrap(h.DeleteThread))
}

// CreateThread 发主题帖 主题与首帖一并创建
func (h *ThreadHandler) CreateThread(c *gin.Context) error {
	var req types.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := currentUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	thread, err := h.ThreadService.CreateThread(c.Request.Context(), &req, userID)
	middleware.ObservePropagation("thread", err)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, thread)
	return nil
}

// CreateReply 回帖 计数同步传播到主题与版块链
func (h *ThreadHandler) CreateReply(c *gin.Context) error {
	var req types.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := currentUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	post, err := h.ThreadService.CreateReply(c.Request.Context(), &req, userID)
	middleware.ObservePropagation("reply", err)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, post)
	return nil
}

// GetThread 主题详情 帖子正序分页
func (h *ThreadHandler) GetThread(c *gin.Context) error {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || threadID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}

	offset, limit := pagination(c)

	// 可能未登录 匿名只影响 editable 标记
	currentUser := uint64(0)
	if uid, err := currentUserID(c); err == nil {
		currentUser = uid
	}

	thread, err := h.ThreadService.GetThread(c.Request.Context(), threadID, offset, limit, currentUser)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, thread)
	return nil
}

// RecordView 主题浏览数+1 并带动所属版块
func (h *ThreadHandler) RecordView(c *gin.Context) error {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || threadID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}

	if err := h.ThreadService.RecordThreadView(c.Request.Context(), threadID); err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}

// DeleteThread 删除主题 级联删除帖子与订阅并触发对账
func (h *ThreadHandler) DeleteThread(c *gin.Context) error {
	var req types.DeleteThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.ThreadService.DeleteThread(c.Request.Context(), req.ThreadID); err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}

// currentUserID 当前登录用户
func currentUserID(c *gin.Context) (uint64, error) {
	uid, err := context.GetUserID(c)
	if err != nil || uid <= 0 {
		return 0, service.ErrNotLoggedIn
	}
	return uint64(uid), nil
}
