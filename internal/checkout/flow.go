package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/models"
)

// Result 提交成功后的订单结果
type Result struct {
	Token       string           `json:"token"`
	Locale      string           `json:"locale"`
	Draft       Draft            `json:"draft"`
	Items       []cartstore.Item `json:"items"`
	TotalItems  int              `json:"total_items"`
	TotalAmount models.Money     `json:"total_amount"`
	Subject     string           `json:"subject"`
	Body        string           `json:"body"`
	ClientIP    string           `json:"client_ip,omitempty"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

// flowDeps 流程依赖，由 Manager 注入
type flowDeps struct {
	notifier      Notifier
	loadCart      func(ctx context.Context, token string) (cartstore.Cart, error)
	clearCart     func(token string)
	completeDelay time.Duration
	submitTimeout time.Duration
	afterFunc     func(d time.Duration, fn func())
	now           func() time.Time
}

// Flow 单次结算尝试的状态机
type Flow struct {
	mu       sync.Mutex
	token    string
	locale   string
	state    State
	draft    Draft
	snapshot []cartstore.Item
	busy     bool
	deps     flowDeps
}

func newFlow(token, locale string, deps flowDeps) *Flow {
	return &Flow{
		token:  token,
		locale: locale,
		state:  StateCollectingInfo,
		deps:   deps,
	}
}

// State 当前状态
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Draft 当前草稿副本
func (f *Flow) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Snapshot 进入选择支付步骤时锁定的购物车快照
func (f *Flow) Snapshot() []cartstore.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]cartstore.Item, len(f.snapshot))
	copy(items, f.snapshot)
	return items
}

// SubmitInfo 提交第一步信息：校验必填字段，锁定购物车快照，
// 进入选择支付步骤。
func (f *Flow) SubmitInfo(ctx context.Context, info Info) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateCollectingInfo {
		return ErrInvalidState
	}
	if err := info.Validate(); err != nil {
		return err
	}
	cart, err := f.deps.loadCart(ctx, f.token)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return ErrCartEmpty
	}
	f.draft.applyInfo(info)
	f.snapshot = cart.Snapshot()
	f.state = StateSelectingPayment
	return nil
}

// Back 从选择支付返回填写信息，保留已填内容
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSelectingPayment {
		return ErrInvalidState
	}
	if f.busy {
		return ErrSubmitInFlight
	}
	f.state = StateCollectingInfo
	return nil
}

// Submit 用选定的支付方式提交订单。通知协作方被同步调用：
// 成功则进入 completed 并在延迟后清空购物车；失败保持在
// selecting_payment，购物车与草稿原样保留，可直接重试。
// busy 标志拒绝飞行中的重复提交。
func (f *Flow) Submit(ctx context.Context, paymentMethod string) (Result, error) {
	f.mu.Lock()
	if f.state != StateSelectingPayment {
		f.mu.Unlock()
		return Result{}, ErrInvalidState
	}
	if f.busy {
		f.mu.Unlock()
		return Result{}, ErrSubmitInFlight
	}
	method := strings.ToLower(strings.TrimSpace(paymentMethod))
	if method == "" {
		method = f.draft.PaymentMethod
	}
	if method != constants.PaymentMethodCOD && method != constants.PaymentMethodBank {
		f.mu.Unlock()
		return Result{}, ErrInvalidPaymentMethod
	}
	f.busy = true
	f.draft.PaymentMethod = method
	draft := f.draft
	items := make([]cartstore.Item, len(f.snapshot))
	copy(items, f.snapshot)
	token := f.token
	locale := f.locale
	f.mu.Unlock()

	subject := BuildSubject(locale, draft.RecipientName)
	body := BuildBody(locale, draft, items)
	payload := Payload{
		RecipientName:  draft.RecipientName,
		RecipientEmail: draft.Email,
		RecipientPhone: draft.Phone,
		Subject:        subject,
		Body:           body,
	}

	sendCtx := ctx
	if f.deps.submitTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, f.deps.submitTimeout)
		defer cancel()
	}
	sendErr := f.deps.notifier.Send(sendCtx, payload)

	f.mu.Lock()
	f.busy = false
	if sendErr != nil {
		f.mu.Unlock()
		return Result{}, fmt.Errorf("%w: %v", ErrNotifyFailed, sendErr)
	}
	f.state = StateCompleted
	f.mu.Unlock()

	f.scheduleCartClear(token)

	totalItems := 0
	totalAmount := models.NewMoneyFromInt(0)
	for _, item := range items {
		totalItems += item.Quantity
		totalAmount = totalAmount.Add(item.LineTotal())
	}

	return Result{
		Token:       token,
		Locale:      locale,
		Draft:       draft,
		Items:       items,
		TotalItems:  totalItems,
		TotalAmount: totalAmount,
		Subject:     subject,
		Body:        body,
		SubmittedAt: f.deps.now(),
	}, nil
}

// scheduleCartClear 成功后延迟清空购物车，延迟 <= 0 时立即清空
func (f *Flow) scheduleCartClear(token string) {
	if f.deps.clearCart == nil {
		return
	}
	if f.deps.completeDelay <= 0 {
		f.deps.clearCart(token)
		return
	}
	f.deps.afterFunc(f.deps.completeDelay, func() {
		f.deps.clearCart(token)
	})
}

// Dismiss 关闭结算弹层。completed 状态下重置草稿为零值，
// 其余状态直接放弃本次尝试。
func (f *Flow) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateCompleted {
		f.draft = Draft{}
	}
}
