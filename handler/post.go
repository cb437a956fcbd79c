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

type PostHandler struct {
	PostService service.IPostService
}

func (h *PostHandler) RegisterRouter(r gin.IRouter) {
	posts := r.Group("/v1/posts")
	posts.POST("/edit", context.Wrap(h.EditPost)) // 编辑窗口内修改帖子
	posts.GET("/count/:user_id", context.Wrap(h.GetUserPostCount))
}

// EditPost 编辑帖子 仅作者在编辑窗口内可用
func (h *PostHandler) EditPost(c *gin.Context) error {
	var req types.EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := currentUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	post, err := h.PostService.EditPost(c.Request.Context(), &req, userID)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, post)
	return nil
}

// GetUserPostCount 用户发帖总数
func (h *PostHandler) GetUserPostCount(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return response.NewError(http.StatusBadRequest, "user_id参数错误")
	}

	count, err := h.PostService.GetUserPostCount(c.Request.Context(), userID)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, count)
	return nil
}
