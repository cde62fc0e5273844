package public

import (
	"strconv"
	"strings"

	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/models"
	"github.com/emily-flower/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ProductView 前台商品响应结构（按请求语言本地化）
type ProductView struct {
	ID            uint               `json:"id"`
	Slug          string             `json:"slug"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	Price         models.Money       `json:"price"`
	PriceText     string             `json:"price_text"`
	OriginalPrice *models.Money      `json:"original_price,omitempty"`
	Image         string             `json:"image"`
	Images        models.StringArray `json:"images,omitempty"`
	Tag           string             `json:"tag,omitempty"`
	Rating        float64            `json:"rating"`
	Reviews       int                `json:"reviews"`
	InStock       bool               `json:"in_stock"`
	Featured      bool               `json:"featured"`
	Category      *CategoryView      `json:"category,omitempty"`
}

// CategoryView 前台分类响应结构
type CategoryView struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func toProductView(p models.Product, locale string) ProductView {
	view := ProductView{
		ID:            p.ID,
		Slug:          p.Slug,
		Name:          p.NameJSON.Text(locale),
		Description:   p.DescriptionJSON.Text(locale),
		Price:         p.Price,
		PriceText:     p.Price.Format(),
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Images:        p.Images,
		Tag:           p.Tag,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		InStock:       p.InStock,
		Featured:      p.Featured,
	}
	if p.Category.ID != 0 {
		view.Category = &CategoryView{
			ID:   p.Category.ID,
			Slug: p.Category.Slug,
			Name: p.Category.NameJSON.Text(locale),
		}
	}
	return view
}

// GetProducts 获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	locale := requestLocale(c)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   strings.TrimSpace(c.Query("category_id")),
		CategorySlug: strings.TrimSpace(c.Query("category")),
		Search:       strings.TrimSpace(c.Query("search")),
		OnlyInStock:  c.Query("in_stock") == "true",
		WithCategory: true,
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p, locale))
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, views, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetFeaturedProducts 获取首页推荐商品
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))
	locale := requestLocale(c)

	products, err := h.ProductService.ListFeatured(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p, locale))
	}
	response.Success(c, gin.H{"products": views})
}

// GetProduct 按 slug 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	product, err := h.ProductService.GetBySlug(slug)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	if product == nil {
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}
	response.Success(c, toProductView(*product, requestLocale(c)))
}
