package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/repository"
	"github.com/emily-flower/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 商品创建/更新请求
type ProductRequest struct {
	CategoryID    uint              `json:"category_id" binding:"required"`
	Slug          string            `json:"slug" binding:"required"`
	Name          map[string]string `json:"name" binding:"required"`
	Description   map[string]string `json:"description"`
	Price         int64             `json:"price" binding:"required"`
	OriginalPrice *int64            `json:"original_price"`
	Image         string            `json:"image"`
	Images        []string          `json:"images"`
	Tag           string            `json:"tag"`
	Rating        float64           `json:"rating"`
	Reviews       int               `json:"reviews"`
	InStock       *bool             `json:"in_stock"`
	Featured      bool              `json:"featured"`
	SortOrder     int               `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return service.ProductInput{
		CategoryID:    r.CategoryID,
		Slug:          r.Slug,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		Images:        r.Images,
		Tag:           r.Tag,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		InStock:       inStock,
		Featured:      r.Featured,
		SortOrder:     r.SortOrder,
	}
}

func respondProductSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrInvalidPrice):
		respondError(c, response.CodeBadRequest, "error.product_price_invalid", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.category_not_found", nil)
	default:
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
	}
}

// GetProducts 获取商品列表 (Admin)
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   strings.TrimSpace(c.Query("category_id")),
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetProduct 获取商品详情 (Admin)
func (h *Handler) GetProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondProductSaveError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondProductSaveError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品（软删除）
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.ProductService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
		return
	}
	response.Success(c, nil)
}
