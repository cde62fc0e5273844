package admin

import (
	"errors"

	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 分类创建/更新请求
type CategoryRequest struct {
	Slug      string            `json:"slug" binding:"required"`
	Name      map[string]string `json:"name" binding:"required"`
	SortOrder int               `json:"sort_order"`
}

// GetCategories 获取分类列表 (Admin)
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Create(service.CategoryInput{
		Slug:      req.Slug,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrSlugExists) {
			respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_save_failed", err)
		return
	}
	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Update(id, service.CategoryInput{
		Slug:      req.Slug,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
		case errors.Is(err, service.ErrSlugExists):
			respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.category_save_failed", err)
		}
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类，被商品引用时拒绝
func (h *Handler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := h.CategoryService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryInUse):
			respondError(c, response.CodeBadRequest, "error.category_in_use", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.category_save_failed", err)
		}
		return
	}
	response.Success(c, nil)
}
