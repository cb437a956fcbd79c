package handler

import (
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/service"
	"Agora/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ForumHandler struct {
	ForumService service.IForumService
}

func (h *ForumHandler) RegisterRouter(r gin.IRouter) {
	forums := r.Group("/v1/forums")
	forums.POST("/create", context.Wrap(h.CreateForum))
	forums.GET("", context.Wrap(h.ListForums))
	forums.GET("/:id", context.Wrap(h.GetForum))    // 版块详情 会记一次浏览
	forums.POST("/:id/view", context.Wrap(h.RecordView))
}

// CreateForum 新建版块 父版块与分类互斥
func (h *ForumHandler) CreateForum(c *gin.Context) error {
	var req types.CreateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	forum, err := h.ForumService.CreateForum(c.Request.Context(), &req)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, forum)
	return nil
}

// ListForums 顶层版块列表
func (h *ForumHandler) ListForums(c *gin.Context) error {
	forums, err := h.ForumService.ListRootForums(c.Request.Context())
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, forums)
	return nil
}

// GetForum 版块详情 含子版块与主题列表
func (h *ForumHandler) GetForum(c *gin.Context) error {
	forumID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || forumID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}

	offset, limit := pagination(c)
	forum, err := h.ForumService.GetForum(c.Request.Context(), forumID, offset, limit)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, forum)
	return nil
}

// RecordView 版块浏览数+1
func (h *ForumHandler) RecordView(c *gin.Context) error {
	forumID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || forumID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}

	if err := h.ForumService.RecordForumView(c.Request.Context(), forumID); err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}

// pagination 解析分页参数
func pagination(c *gin.Context) (offset, limit int) {
	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	limit = 20
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	return (page - 1) * limit, limit
}
