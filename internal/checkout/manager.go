package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/emily-flower/api/internal/cartstore"
)

// Options Manager 配置
type Options struct {
	Notifier      Notifier
	Carts         *cartstore.Store
	CompleteDelay time.Duration
	SubmitTimeout time.Duration

	// AfterFunc 延迟调度，测试可注入，默认 time.AfterFunc
	AfterFunc func(d time.Duration, fn func())
	// Now 测试可注入的时钟
	Now func() time.Time
	// OnCompleted 提交成功后的回调（落库订单、投递买家确认邮件）
	OnCompleted func(result Result)
}

// Manager 按购物车令牌管理活跃的结算流程，同一令牌同时至多一次尝试
type Manager struct {
	mu    sync.Mutex
	flows map[string]*Flow
	opts  Options
}

// NewManager 创建结算管理器
func NewManager(opts Options) *Manager {
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		flows: make(map[string]*Flow),
		opts:  opts,
	}
}

// Open 开启结算。要求购物车非空；同一令牌已有流程时复用该流程。
func (m *Manager) Open(ctx context.Context, token, locale string) (*Flow, error) {
	m.mu.Lock()
	if flow, ok := m.flows[token]; ok {
		m.mu.Unlock()
		return flow, nil
	}
	m.mu.Unlock()

	cart, err := m.opts.Carts.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if flow, ok := m.flows[token]; ok {
		return flow, nil
	}
	flow := newFlow(token, locale, m.deps())
	m.flows[token] = flow
	return flow, nil
}

// Get 获取活跃流程
func (m *Manager) Get(token string) (*Flow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	flow, ok := m.flows[token]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}

// SubmitInfo 提交第一步信息
func (m *Manager) SubmitInfo(ctx context.Context, token string, info Info) (*Flow, error) {
	flow, err := m.Get(token)
	if err != nil {
		return nil, err
	}
	if err := flow.SubmitInfo(ctx, info); err != nil {
		return nil, err
	}
	return flow, nil
}

// Back 返回上一步
func (m *Manager) Back(token string) (*Flow, error) {
	flow, err := m.Get(token)
	if err != nil {
		return nil, err
	}
	if err := flow.Back(); err != nil {
		return nil, err
	}
	return flow, nil
}

// Submit 提交订单，成功后触发 OnCompleted 回调
func (m *Manager) Submit(ctx context.Context, token, paymentMethod string) (Result, error) {
	flow, err := m.Get(token)
	if err != nil {
		return Result{}, err
	}
	result, err := flow.Submit(ctx, paymentMethod)
	if err != nil {
		return Result{}, err
	}
	result.ClientIP = ClientIPFromContext(ctx)
	if m.opts.OnCompleted != nil {
		m.opts.OnCompleted(result)
	}
	return result, nil
}

// Dismiss 关闭结算弹层并结束本次尝试
func (m *Manager) Dismiss(token string) {
	m.mu.Lock()
	flow, ok := m.flows[token]
	if ok {
		delete(m.flows, token)
	}
	m.mu.Unlock()
	if ok {
		flow.Dismiss()
	}
}

func (m *Manager) deps() flowDeps {
	return flowDeps{
		notifier: m.opts.Notifier,
		loadCart: func(ctx context.Context, token string) (cartstore.Cart, error) {
			return m.opts.Carts.Get(ctx, token)
		},
		clearCart: func(token string) {
			// 定时器触发时请求上下文已结束，使用后台上下文
			_, _ = m.opts.Carts.Clear(context.Background(), token)
		},
		completeDelay: m.opts.CompleteDelay,
		submitTimeout: m.opts.SubmitTimeout,
		afterFunc:     m.opts.AfterFunc,
		now:           m.opts.Now,
	}
}
