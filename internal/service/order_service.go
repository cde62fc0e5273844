package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/emily-flower/api/internal/checkout"
	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/models"
	"github.com/emily-flower/api/internal/repository"
)

// orderStatusTransitions 允许的订单状态流转
var orderStatusTransitions = map[string]map[string]bool{
	constants.OrderStatusSubmitted: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusCompleted: true,
		constants.OrderStatusCanceled:  true,
	},
}

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单服务实例
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// RecordCheckout 将提交成功的结算结果落库为订单
func (s *OrderService) RecordCheckout(result checkout.Result, clientIP string) (*models.Order, error) {
	order := &models.Order{
		OrderNo:       generateOrderNo(),
		RecipientName: result.Draft.RecipientName,
		Phone:         result.Draft.Phone,
		Email:         result.Draft.Email,
		Address:       result.Draft.Address,
		Note:          result.Draft.Note,
		PaymentMethod: result.Draft.PaymentMethod,
		Status:        constants.OrderStatusSubmitted,
		TotalItems:    result.TotalItems,
		TotalAmount:   result.TotalAmount,
		Summary:       result.Body,
		ClientIP:      clientIP,
	}

	items := make([]models.OrderItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Slug:      item.Slug,
			Image:     item.Image,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}

	if err := s.orderRepo.Create(order, items); err != nil {
		return nil, err
	}
	return order, nil
}

// List 订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// GetByID 订单详情
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// UpdateStatus 更新订单状态，只允许既定流转
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	nexts, ok := orderStatusTransitions[order.Status]
	if !ok || !nexts[status] {
		return nil, ErrInvalidOrderStatus
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("EF%s%s", now, randNumeric(4))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
