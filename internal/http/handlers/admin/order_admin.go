package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/repository"
	"github.com/emily-flower/api/internal/service"

	"github.com/gin-gonic/gin"
)

func parseOrderID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

func parseDateQuery(c *gin.Context, key string) *time.Time {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// GetOrders 获取订单列表 (Admin)
func (h *Handler) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      strings.TrimSpace(c.Query("status")),
		OrderNo:     strings.TrimSpace(c.Query("order_no")),
		Email:       strings.TrimSpace(c.Query("email")),
		Search:      strings.TrimSpace(c.Query("search")),
		CreatedFrom: parseDateQuery(c, "created_from"),
		CreatedTo:   parseDateQuery(c, "created_to"),
	}

	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetOrder 获取订单详情 (Admin)
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus 更新订单状态，仅允许合法流转
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrInvalidOrderStatus):
			respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		}
		return
	}
	requestLog(c).Infow("admin_order_status_updated", "order_id", id, "status", req.Status)
	response.Success(c, order)
}
