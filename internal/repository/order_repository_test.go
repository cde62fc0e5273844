package repository

import (
	"testing"

	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/models"
)

func createTestOrder(t *testing.T, repo *GormOrderRepository, orderNo, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:       orderNo,
		RecipientName: "Nguyễn Thị Lan",
		Phone:         "0901234567",
		Email:         "lan@example.com",
		Address:       "12 Lê Lợi, Quận 1, TP.HCM",
		PaymentMethod: constants.PaymentMethodCOD,
		Status:        status,
		TotalItems:    3,
		TotalAmount:   models.NewMoneyFromInt(1750000),
	}
	items := []models.OrderItem{
		{ProductID: "1", Name: "Bó hoa sáp hồng", Quantity: 1, UnitPrice: models.NewMoneyFromInt(450000), LineTotal: models.NewMoneyFromInt(450000)},
		{ProductID: "2", Name: "Hộp quà hoa đỏ", Quantity: 2, UnitPrice: models.NewMoneyFromInt(650000), LineTotal: models.NewMoneyFromInt(1300000)},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderCreatePersistsItems(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	created := createTestOrder(t, repo, "EF20260828001", constants.OrderStatusSubmitted)

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got == nil {
		t.Fatalf("order not found")
	}
	if len(got.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(got.Items))
	}
	if got.TotalAmount.String() != "1750000" {
		t.Fatalf("total amount want 1750000 got %s", got.TotalAmount.String())
	}
	for _, item := range got.Items {
		if item.OrderID != created.ID {
			t.Fatalf("item order id want %d got %d", created.ID, item.OrderID)
		}
	}
}

func TestOrderListFiltersByStatusAndSearch(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	createTestOrder(t, repo, "EF20260828001", constants.OrderStatusSubmitted)
	createTestOrder(t, repo, "EF20260828002", constants.OrderStatusConfirmed)

	orders, total, err := repo.List(OrderListFilter{Status: constants.OrderStatusSubmitted, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("status filter want 1 got total=%d len=%d", total, len(orders))
	}

	orders, total, err = repo.List(OrderListFilter{Search: "EF20260828002", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("search orders failed: %v", err)
	}
	if total != 1 || len(orders) != 1 || orders[0].OrderNo != "EF20260828002" {
		t.Fatalf("search filter unexpected: total=%d orders=%+v", total, orders)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	created := createTestOrder(t, repo, "EF20260828003", constants.OrderStatusSubmitted)

	if err := repo.UpdateStatus(created.ID, constants.OrderStatusConfirmed); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if got.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want %s got %s", constants.OrderStatusConfirmed, got.Status)
	}

	count, err := repo.CountByStatus(constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("count by status failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}
}
