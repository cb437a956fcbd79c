package handler

import (
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminHandler 运维入口 手动触发对账
type AdminHandler struct {
	ReconcileService service.IReconcileService
}

func (h *AdminHandler) RegisterRouter(r gin.IRouter) {
	admin := r.Group("/v1/admin/reconcile")
	admin.POST("/forums/:id/replies", context.Wrap(h.RecomputeReplyCount))
	admin.POST("/forums/:id/views", context.Wrap(h.RecomputeViewCount))
	admin.POST("/threads/:id/subscribers", context.Wrap(h.RecomputeSubscriberCount))
	admin.POST("/sweep", context.Wrap(h.Sweep))
}

// RecomputeReplyCount 重算版块子树回复数
func (h *AdminHandler) RecomputeReplyCount(c *gin.Context) error {
	forumID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || forumID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}

	if err := h.ReconcileService.RecomputeReplyCount(c.Request.Context(), forumID); err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}

// RecomputeViewCount 重算版块浏览数(仅本级)
func (h *AdminHandler) RecomputeViewCount(c *gin.Context) error {
	forumID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || forumID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}

	if err := h.ReconcileService.RecomputeViewCount(c.Request.Context(), forumID); err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}

// RecomputeSubscriberCount 重算主题订阅数
func (h *AdminHandler) RecomputeSubscriberCount(c *gin.Context) error {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || threadID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}

	if err := h.ReconcileService.RecomputeSubscriberCount(c.Request.Context(), threadID); err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}

// Sweep 全量对账一轮
func (h *AdminHandler) Sweep(c *gin.Context) error {
	if err := h.ReconcileService.Sweep(c.Request.Context()); err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, nil)
	return nil
}
