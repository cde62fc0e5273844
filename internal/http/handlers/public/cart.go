package public

import (
	"errors"
	"strings"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/models"
	"github.com/emily-flower/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// CartItemView 购物车项响应
type CartItemView struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	Image     string       `json:"image"`
	Category  string       `json:"category,omitempty"`
	Price     models.Money `json:"price"`
	Quantity  int          `json:"quantity"`
	LineTotal models.Money `json:"line_total"`
}

// CartView 购物车响应
type CartView struct {
	Items       []CartItemView `json:"items"`
	TotalItems  int            `json:"total_items"`
	TotalAmount models.Money   `json:"total_amount"`
	TotalText   string         `json:"total_text"`
	IsOpen      bool           `json:"is_open"`
}

func toCartView(cart cartstore.Cart) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Slug:      item.Slug,
			Image:     item.Image,
			Category:  item.Category,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}
	total := cart.TotalPrice()
	return CartView{
		Items:       items,
		TotalItems:  cart.TotalItems(),
		TotalAmount: total,
		TotalText:   total.Format(),
		IsOpen:      cart.IsOpen(),
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
	}
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Get(c.Request.Context(), token)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, toCartView(cart))
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	cart, err := h.CartService.Add(c.Request.Context(), token, strings.TrimSpace(req.ProductID), req.Quantity, requestLocale(c))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, toCartView(cart))
}

// UpdateCartItem 更新购物车项数量，数量 <= 0 等价于移除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	productID := strings.TrimSpace(c.Param("product_id"))
	if productID == "" {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	cart, err := h.CartService.UpdateQuantity(c.Request.Context(), token, productID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, toCartView(cart))
}

// RemoveCartItem 移除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	productID := strings.TrimSpace(c.Param("product_id"))
	if productID == "" {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}
	cart, err := h.CartService.Remove(c.Request.Context(), token, productID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, toCartView(cart))
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Clear(c.Request.Context(), token)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, toCartView(cart))
}

// SetCartOpen 展开/收起购物车抽屉
func (h *Handler) SetCartOpen(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	var req struct {
		Open bool `json:"open"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	cart, err := h.CartService.SetOpen(c.Request.Context(), token, req.Open)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, toCartView(cart))
}
