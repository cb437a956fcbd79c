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

type CategoryHandler struct {
	ForumService service.IForumService
}

func (h *CategoryHandler) RegisterRouter(r gin.IRouter) {
	categories := r.Group("/v1/categories")
	categories.POST("/create", context.Wrap(h.CreateCategory))
	categories.GET("", context.Wrap(h.ListCategories))
	categories.GET("/:id", context.Wrap(h.GetCategory))
}

// CreateCategory 新建分类
func (h *CategoryHandler) CreateCategory(c *gin.Context) error {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	category, err := h.ForumService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, category)
	return nil
}

// ListCategories 顶级分类列表
func (h *CategoryHandler) ListCategories(c *gin.Context) error {
	categories, err := h.ForumService.ListRootCategories(c.Request.Context())
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, categories)
	return nil
}

// GetCategory 分类详情 返回子分类与版块
func (h *CategoryHandler) GetCategory(c *gin.Context) error {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}

	subcategories, forums, err := h.ForumService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, gin.H{
		"subcategories": subcategories,
		"forums":        forums,
	})
	return nil
}
