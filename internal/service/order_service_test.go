package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/checkout"
	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/models"
	"github.com/emily-flower/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Setting{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func checkoutResultFixture() checkout.Result {
	return checkout.Result{
		Token:  "token-a",
		Locale: "vi-VN",
		Draft: checkout.Draft{
			RecipientName: "Nguyễn Thị Lan",
			Phone:         "0901234567",
			Email:         "lan@example.com",
			Address:       "12 Lê Lợi, Quận 1, TP.HCM",
			PaymentMethod: constants.PaymentMethodCOD,
		},
		Items: []cartstore.Item{
			{ProductID: "1", Name: "Bó hoa sáp hồng", Price: models.NewMoneyFromInt(450000), Quantity: 1},
			{ProductID: "2", Name: "Hộp quà hoa đỏ", Price: models.NewMoneyFromInt(650000), Quantity: 2},
		},
		TotalItems:  3,
		TotalAmount: models.NewMoneyFromInt(1750000),
		Subject:     "🌸 Đơn hàng mới từ Nguyễn Thị Lan",
		Body:        "Thông tin đặt hàng:",
		SubmittedAt: time.Now(),
	}
}

func TestRecordCheckoutCreatesOrderWithItems(t *testing.T) {
	db := setupServiceTestDB(t)
	orders := NewOrderService(repository.NewOrderRepository(db))

	order, err := orders.RecordCheckout(checkoutResultFixture(), "203.0.113.7")
	if err != nil {
		t.Fatalf("record checkout failed: %v", err)
	}
	if !strings.HasPrefix(order.OrderNo, "EF") {
		t.Fatalf("order no should start with EF, got %s", order.OrderNo)
	}
	if order.Status != constants.OrderStatusSubmitted {
		t.Fatalf("status want submitted got %s", order.Status)
	}

	got, err := orders.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(got.Items))
	}
	if got.TotalAmount.String() != "1750000" || got.TotalItems != 3 {
		t.Fatalf("totals wrong: amount=%s items=%d", got.TotalAmount.String(), got.TotalItems)
	}
	if got.Items[1].LineTotal.String() != "1300000" {
		t.Fatalf("line total want 1300000 got %s", got.Items[1].LineTotal.String())
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	db := setupServiceTestDB(t)
	orders := NewOrderService(repository.NewOrderRepository(db))
	order, err := orders.RecordCheckout(checkoutResultFixture(), "")
	if err != nil {
		t.Fatalf("record checkout failed: %v", err)
	}

	// submitted 不能直接 completed
	if _, err := orders.UpdateStatus(order.ID, constants.OrderStatusCompleted); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("want ErrInvalidOrderStatus got %v", err)
	}

	updated, err := orders.UpdateStatus(order.ID, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if updated.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want confirmed got %s", updated.Status)
	}

	if _, err := orders.UpdateStatus(order.ID, constants.OrderStatusCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	// completed 是终态
	if _, err := orders.UpdateStatus(order.ID, constants.OrderStatusCanceled); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("terminal order should reject transitions, got %v", err)
	}
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	db := setupServiceTestDB(t)
	orders := NewOrderService(repository.NewOrderRepository(db))

	if _, err := orders.UpdateStatus(9999, constants.OrderStatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}
