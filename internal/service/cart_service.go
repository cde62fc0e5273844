package service

import (
	"context"
	"fmt"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/repository"
)

// CartService 购物车服务：从商品目录取快照数据写入购物车
type CartService struct {
	store       *cartstore.Store
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务实例
func NewCartService(store *cartstore.Store, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
	}
}

// Get 获取购物车
func (s *CartService) Get(ctx context.Context, token string) (cartstore.Cart, error) {
	return s.store.Get(ctx, token)
}

// Add 加购：以加购时刻的目录数据（名称、图片、价格）为快照
func (s *CartService) Add(ctx context.Context, token, productID string, quantity int, locale string) (cartstore.Cart, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return cartstore.Cart{}, err
	}
	if product == nil {
		return cartstore.Cart{}, ErrNotFound
	}
	if !product.InStock {
		return cartstore.Cart{}, fmt.Errorf("%w: product out of stock", ErrInvalidInput)
	}

	item := cartstore.Item{
		ProductID: fmt.Sprintf("%d", product.ID),
		Name:      product.NameJSON.Text(locale),
		Slug:      product.Slug,
		Image:     product.Image,
		Category:  product.Category.NameJSON.Text(locale),
		Price:     product.Price,
		Quantity:  quantity,
	}
	return s.store.AddItem(ctx, token, item)
}

// UpdateQuantity 更新数量，数量 <= 0 等价于移除
func (s *CartService) UpdateQuantity(ctx context.Context, token, productID string, quantity int) (cartstore.Cart, error) {
	return s.store.UpdateQuantity(ctx, token, productID, quantity)
}

// Remove 移除商品
func (s *CartService) Remove(ctx context.Context, token, productID string) (cartstore.Cart, error) {
	return s.store.RemoveItem(ctx, token, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, token string) (cartstore.Cart, error) {
	return s.store.Clear(ctx, token)
}

// SetOpen 设置抽屉展开状态
func (s *CartService) SetOpen(ctx context.Context, token string, open bool) (cartstore.Cart, error) {
	return s.store.SetOpen(ctx, token, open)
}
