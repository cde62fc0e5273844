package public

import (
	"github.com/emily-flower/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	locale := requestLocale(c)
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, CategoryView{
			ID:   category.ID,
			Slug: category.Slug,
			Name: category.NameJSON.Text(locale),
		})
	}
	response.Success(c, gin.H{"categories": views})
}
