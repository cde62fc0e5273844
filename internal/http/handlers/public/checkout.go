package public

import (
	"errors"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/checkout"
	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/models"

	"github.com/gin-gonic/gin"
)

// CheckoutInfoRequest 结算第一步信息请求
type CheckoutInfoRequest struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Note          string `json:"note"`
}

// CheckoutSubmitRequest 结算提交请求
type CheckoutSubmitRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// CheckoutFlowView 结算流程响应
type CheckoutFlowView struct {
	State       checkout.State `json:"state"`
	Draft       checkout.Draft `json:"draft"`
	Items       []CartItemView `json:"items,omitempty"`
	TotalItems  int            `json:"total_items"`
	TotalAmount models.Money   `json:"total_amount"`
	TotalText   string         `json:"total_text"`
}

// CheckoutResultView 提交成功响应
type CheckoutResultView struct {
	State       checkout.State `json:"state"`
	Draft       checkout.Draft `json:"draft"`
	Items       []CartItemView `json:"items"`
	TotalItems  int            `json:"total_items"`
	TotalAmount models.Money   `json:"total_amount"`
	TotalText   string         `json:"total_text"`
	SubmittedAt string         `json:"submitted_at"`
}

func toCheckoutItems(items []cartstore.Item) ([]CartItemView, int, models.Money) {
	views := make([]CartItemView, 0, len(items))
	totalItems := 0
	totalAmount := models.NewMoneyFromInt(0)
	for _, item := range items {
		views = append(views, CartItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Slug:      item.Slug,
			Image:     item.Image,
			Category:  item.Category,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
		totalItems += item.Quantity
		totalAmount = totalAmount.Add(item.LineTotal())
	}
	return views, totalItems, totalAmount
}

func toCheckoutFlowView(flow *checkout.Flow) CheckoutFlowView {
	items, totalItems, totalAmount := toCheckoutItems(flow.Snapshot())
	return CheckoutFlowView{
		State:       flow.State(),
		Draft:       flow.Draft(),
		Items:       items,
		TotalItems:  totalItems,
		TotalAmount: totalAmount,
		TotalText:   totalAmount.Format(),
	}
}

func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrCartEmpty):
		respondError(c, response.CodeBadRequest, "error.cart_empty", nil)
	case errors.Is(err, checkout.ErrFlowNotFound):
		respondError(c, response.CodeNotFound, "error.checkout_not_found", nil)
	case errors.Is(err, checkout.ErrInvalidState):
		respondError(c, response.CodeBadRequest, "error.checkout_state_invalid", nil)
	case errors.Is(err, checkout.ErrFieldRequired):
		respondError(c, response.CodeBadRequest, "error.checkout_field_required", nil)
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		respondError(c, response.CodeBadRequest, "error.payment_method_invalid", nil)
	case errors.Is(err, checkout.ErrSubmitInFlight):
		respondError(c, response.CodeTooManyRequests, "error.submit_in_flight", nil)
	case errors.Is(err, checkout.ErrNotifyFailed):
		respondError(c, response.CodeInternal, "error.order_submit_failed", err)
	default:
		respondError(c, response.CodeInternal, "error.order_submit_failed", err)
	}
}

// OpenCheckout 开启结算流程
func (h *Handler) OpenCheckout(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	flow, err := h.CheckoutManager.Open(c.Request.Context(), token, requestLocale(c))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, toCheckoutFlowView(flow))
}

// GetCheckout 获取当前结算状态
func (h *Handler) GetCheckout(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	flow, err := h.CheckoutManager.Get(token)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, toCheckoutFlowView(flow))
}

// SubmitCheckoutInfo 提交第一步买家信息，进入选择支付步骤
func (h *Handler) SubmitCheckoutInfo(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	var req CheckoutInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	flow, err := h.CheckoutManager.SubmitInfo(c.Request.Context(), token, checkout.Info{
		RecipientName: req.RecipientName,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Note:          req.Note,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, toCheckoutFlowView(flow))
}

// CheckoutBack 从选择支付返回填写信息
func (h *Handler) CheckoutBack(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	flow, err := h.CheckoutManager.Back(token)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, toCheckoutFlowView(flow))
}

// SubmitCheckout 用选定支付方式提交订单
func (h *Handler) SubmitCheckout(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	var req CheckoutSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	ctx := checkout.WithClientIP(c.Request.Context(), c.ClientIP())
	result, err := h.CheckoutManager.Submit(ctx, token, req.PaymentMethod)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	items, totalItems, totalAmount := toCheckoutItems(result.Items)
	response.Success(c, CheckoutResultView{
		State:       checkout.StateCompleted,
		Draft:       result.Draft,
		Items:       items,
		TotalItems:  totalItems,
		TotalAmount: totalAmount,
		TotalText:   totalAmount.Format(),
		SubmittedAt: result.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// DismissCheckout 关闭结算弹层
func (h *Handler) DismissCheckout(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	h.CheckoutManager.Dismiss(token)
	response.Success(c, gin.H{"dismissed": true})
}
