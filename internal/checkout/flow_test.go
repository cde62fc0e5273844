package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/i18n"
	"github.com/emily-flower/api/internal/models"
)

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []Payload
	err     error
	block   chan struct{}
	entered chan struct{}
}

func (n *fakeNotifier) Send(_ context.Context, payload Payload) error {
	if n.entered != nil {
		close(n.entered)
		n.entered = nil
	}
	if n.block != nil {
		<-n.block
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, payload)
	return nil
}

func (n *fakeNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type scheduledCall struct {
	delay time.Duration
	fn    func()
}

type checkoutFixture struct {
	carts     *cartstore.Store
	notifier  *fakeNotifier
	manager   *Manager
	scheduled []scheduledCall
	completed []Result
}

func newCheckoutFixture(t *testing.T, delay time.Duration) *checkoutFixture {
	t.Helper()
	fixture := &checkoutFixture{
		carts:    cartstore.NewStore(cartstore.NewMemoryStorage()),
		notifier: &fakeNotifier{},
	}
	fixture.manager = NewManager(Options{
		Notifier:      fixture.notifier,
		Carts:         fixture.carts,
		CompleteDelay: delay,
		AfterFunc: func(d time.Duration, fn func()) {
			fixture.scheduled = append(fixture.scheduled, scheduledCall{delay: d, fn: fn})
		},
		Now: func() time.Time {
			return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
		},
		OnCompleted: func(result Result) {
			fixture.completed = append(fixture.completed, result)
		},
	})
	return fixture
}

func (f *checkoutFixture) fillCart(t *testing.T, token string) {
	t.Helper()
	ctx := context.Background()
	items := []cartstore.Item{
		{ProductID: "p1", Name: "Bó hoa sáp hồng", Price: models.NewMoneyFromInt(450000), Quantity: 1},
		{ProductID: "p2", Name: "Hộp quà hoa đỏ", Price: models.NewMoneyFromInt(650000), Quantity: 2},
	}
	for _, item := range items {
		if _, err := f.carts.AddItem(ctx, token, item); err != nil {
			t.Fatalf("fill cart failed: %v", err)
		}
	}
}

func validInfo() Info {
	return Info{
		RecipientName: "Nguyễn Thị Lan",
		Phone:         "0901234567",
		Email:         "lan@example.com",
		Address:       "12 Lê Lợi, Quận 1, TP.HCM",
	}
}

func TestCheckoutHappyPathCompletesAndClearsCartAfterDelay(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 2*time.Second)
	fixture.fillCart(t, "token-a")

	flow, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if flow.State() != StateCollectingInfo {
		t.Fatalf("initial state want collecting_info got %s", flow.State())
	}

	if _, err := fixture.manager.SubmitInfo(ctx, "token-a", validInfo()); err != nil {
		t.Fatalf("submit info failed: %v", err)
	}
	if flow.State() != StateSelectingPayment {
		t.Fatalf("state want selecting_payment got %s", flow.State())
	}

	result, err := fixture.manager.Submit(ctx, "token-a", constants.PaymentMethodCOD)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if flow.State() != StateCompleted {
		t.Fatalf("state want completed got %s", flow.State())
	}
	if result.TotalItems != 3 || result.TotalAmount.String() != "1750000" {
		t.Fatalf("result totals wrong: items=%d amount=%s", result.TotalItems, result.TotalAmount.String())
	}
	if fixture.notifier.sentCount() != 1 {
		t.Fatalf("notifications want 1 got %d", fixture.notifier.sentCount())
	}
	if len(fixture.completed) != 1 {
		t.Fatalf("completed callbacks want 1 got %d", len(fixture.completed))
	}

	// 延迟未到，购物车还在
	cart, err := fixture.carts.Get(ctx, "token-a")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart.IsEmpty() {
		t.Fatalf("cart should not be cleared before delay elapses")
	}
	if len(fixture.scheduled) != 1 || fixture.scheduled[0].delay != 2*time.Second {
		t.Fatalf("scheduled clear wrong: %+v", fixture.scheduled)
	}

	fixture.scheduled[0].fn()
	cart, err = fixture.carts.Get(ctx, "token-a")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("cart should be empty after delay elapses")
	}
}

func TestCheckoutNotifierFailureKeepsStateAndCart(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 0)
	fixture.fillCart(t, "token-a")
	fixture.notifier.err = errors.New("smtp unreachable")

	if _, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := fixture.manager.SubmitInfo(ctx, "token-a", validInfo()); err != nil {
		t.Fatalf("submit info failed: %v", err)
	}

	_, err := fixture.manager.Submit(ctx, "token-a", constants.PaymentMethodCOD)
	if !errors.Is(err, ErrNotifyFailed) {
		t.Fatalf("want ErrNotifyFailed got %v", err)
	}

	flow, err := fixture.manager.Get("token-a")
	if err != nil {
		t.Fatalf("get flow failed: %v", err)
	}
	if flow.State() != StateSelectingPayment {
		t.Fatalf("state want selecting_payment got %s", flow.State())
	}
	if flow.Draft().RecipientName != "Nguyễn Thị Lan" {
		t.Fatalf("draft should be preserved, got %+v", flow.Draft())
	}
	cart, err := fixture.carts.Get(ctx, "token-a")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart.IsEmpty() {
		t.Fatalf("cart must stay intact after failed submit")
	}
	if len(fixture.completed) != 0 {
		t.Fatalf("completed callback should not fire on failure")
	}

	// 排除故障后重试成功
	fixture.notifier.err = nil
	if _, err := fixture.manager.Submit(ctx, "token-a", constants.PaymentMethodCOD); err != nil {
		t.Fatalf("retry submit failed: %v", err)
	}
	if flow.State() != StateCompleted {
		t.Fatalf("state after retry want completed got %s", flow.State())
	}
}

func TestCheckoutRejectsReentrantSubmit(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 0)
	fixture.fillCart(t, "token-a")
	fixture.notifier.block = make(chan struct{})
	entered := make(chan struct{})
	fixture.notifier.entered = entered

	if _, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := fixture.manager.SubmitInfo(ctx, "token-a", validInfo()); err != nil {
		t.Fatalf("submit info failed: %v", err)
	}

	firstDone := make(chan error, 1)
	go func() {
		_, err := fixture.manager.Submit(ctx, "token-a", constants.PaymentMethodCOD)
		firstDone <- err
	}()

	<-entered
	if _, err := fixture.manager.Submit(ctx, "token-a", constants.PaymentMethodCOD); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("second submit want ErrSubmitInFlight got %v", err)
	}

	close(fixture.notifier.block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if fixture.notifier.sentCount() != 1 {
		t.Fatalf("notifications want 1 got %d", fixture.notifier.sentCount())
	}
}

func TestCheckoutSubmitInfoValidatesRequiredFields(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 0)
	fixture.fillCart(t, "token-a")

	flow, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	info := validInfo()
	info.Address = "   "
	if _, err := fixture.manager.SubmitInfo(ctx, "token-a", info); !errors.Is(err, ErrFieldRequired) {
		t.Fatalf("want ErrFieldRequired got %v", err)
	}
	if flow.State() != StateCollectingInfo {
		t.Fatalf("state should stay collecting_info, got %s", flow.State())
	}
}

func TestCheckoutBackPreservesDraft(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 0)
	fixture.fillCart(t, "token-a")

	if _, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := fixture.manager.SubmitInfo(ctx, "token-a", validInfo()); err != nil {
		t.Fatalf("submit info failed: %v", err)
	}

	flow, err := fixture.manager.Back("token-a")
	if err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if flow.State() != StateCollectingInfo {
		t.Fatalf("state want collecting_info got %s", flow.State())
	}
	if flow.Draft().Phone != "0901234567" {
		t.Fatalf("draft should survive back, got %+v", flow.Draft())
	}
}

func TestCheckoutOpenRequiresNonEmptyCart(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 0)

	if _, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty got %v", err)
	}
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 0)
	fixture.fillCart(t, "token-a")

	if _, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := fixture.manager.SubmitInfo(ctx, "token-a", validInfo()); err != nil {
		t.Fatalf("submit info failed: %v", err)
	}

	if _, err := fixture.manager.Submit(ctx, "token-a", "crypto"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("want ErrInvalidPaymentMethod got %v", err)
	}
	if fixture.notifier.sentCount() != 0 {
		t.Fatalf("no notification expected, got %d", fixture.notifier.sentCount())
	}
}

func TestCheckoutDismissAfterCompletedResetsDraft(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 0)
	fixture.fillCart(t, "token-a")

	flow, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := fixture.manager.SubmitInfo(ctx, "token-a", validInfo()); err != nil {
		t.Fatalf("submit info failed: %v", err)
	}
	if _, err := fixture.manager.Submit(ctx, "token-a", constants.PaymentMethodBank); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	fixture.manager.Dismiss("token-a")
	if flow.Draft() != (Draft{}) {
		t.Fatalf("draft should reset after dismiss from completed, got %+v", flow.Draft())
	}
	if _, err := fixture.manager.Get("token-a"); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("flow should be gone after dismiss, got %v", err)
	}

	// 再次开启从第一步开始
	fixture.fillCart(t, "token-a")
	fresh, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if fresh.State() != StateCollectingInfo {
		t.Fatalf("fresh flow want collecting_info got %s", fresh.State())
	}
}

func TestCheckoutSummaryUsesSnapshotTakenAtPaymentStep(t *testing.T) {
	ctx := context.Background()
	fixture := newCheckoutFixture(t, 0)
	fixture.fillCart(t, "token-a")

	if _, err := fixture.manager.Open(ctx, "token-a", i18n.LocaleVI); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := fixture.manager.SubmitInfo(ctx, "token-a", validInfo()); err != nil {
		t.Fatalf("submit info failed: %v", err)
	}

	// 结算弹层打开期间另一界面改动购物车，摘要仍按快照出单
	if _, err := fixture.carts.AddItem(ctx, "token-a", cartstore.Item{
		ProductID: "p3",
		Name:      "Gấu bông nhỏ",
		Price:     models.NewMoneyFromInt(150000),
		Quantity:  1,
	}); err != nil {
		t.Fatalf("concurrent add failed: %v", err)
	}

	result, err := fixture.manager.Submit(ctx, "token-a", constants.PaymentMethodCOD)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if strings.Contains(result.Body, "Gấu bông nhỏ") {
		t.Fatalf("summary must reflect snapshot, body:\n%s", result.Body)
	}
	if result.TotalAmount.String() != "1750000" {
		t.Fatalf("snapshot total want 1750000 got %s", result.TotalAmount.String())
	}
}
