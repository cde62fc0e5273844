package cartstore

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/emily-flower/api/internal/constants"
)

// persistedCart 落盘格式，仅包含购物车项
type persistedCart struct {
	Items []Item `json:"items"`
}

// Store 按令牌管理购物车，每次变更后整体持久化。
// 任何恢复失败（键不存在、JSON 损坏、结构不符）都按空购物车处理。
type Store struct {
	mu      sync.Mutex
	storage Storage
	carts   map[string]*Cart
}

// NewStore 创建购物车仓库
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		carts:   make(map[string]*Cart),
	}
}

// Get 获取购物车快照
func (s *Store) Get(ctx context.Context, token string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, err := s.loadLocked(ctx, token)
	if err != nil {
		return Cart{}, err
	}
	return s.viewLocked(cart), nil
}

// AddItem 加入商品并持久化
func (s *Store) AddItem(ctx context.Context, token string, item Item) (Cart, error) {
	return s.mutate(ctx, token, func(cart *Cart) {
		cart.AddItem(item)
	})
}

// UpdateQuantity 更新数量并持久化，数量 <= 0 等价于移除
func (s *Store) UpdateQuantity(ctx context.Context, token, productID string, quantity int) (Cart, error) {
	return s.mutate(ctx, token, func(cart *Cart) {
		cart.UpdateQuantity(productID, quantity)
	})
}

// RemoveItem 移除商品并持久化
func (s *Store) RemoveItem(ctx context.Context, token, productID string) (Cart, error) {
	return s.mutate(ctx, token, func(cart *Cart) {
		cart.RemoveItem(productID)
	})
}

// Clear 清空购物车并持久化空列表
func (s *Store) Clear(ctx context.Context, token string) (Cart, error) {
	return s.mutate(ctx, token, func(cart *Cart) {
		cart.Clear()
	})
}

// SetOpen 设置抽屉展开状态（不持久化）
func (s *Store) SetOpen(ctx context.Context, token string, open bool) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, err := s.loadLocked(ctx, token)
	if err != nil {
		return Cart{}, err
	}
	if open {
		cart.Open()
	} else {
		cart.Close()
	}
	return s.viewLocked(cart), nil
}

func (s *Store) mutate(ctx context.Context, token string, fn func(cart *Cart)) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, err := s.loadLocked(ctx, token)
	if err != nil {
		return Cart{}, err
	}
	fn(cart)
	if err := s.persistLocked(ctx, token, cart); err != nil {
		return Cart{}, err
	}
	return s.viewLocked(cart), nil
}

// loadLocked 获取令牌对应的购物车，未缓存时从存储恢复
func (s *Store) loadLocked(ctx context.Context, token string) (*Cart, error) {
	token = strings.TrimSpace(token)
	if cart, ok := s.carts[token]; ok {
		return cart, nil
	}

	cart := &Cart{}
	data, found, err := s.storage.Load(ctx, storageKey(token))
	if err == nil && found {
		var persisted persistedCart
		if unmarshalErr := json.Unmarshal(data, &persisted); unmarshalErr == nil {
			cart.Items = persisted.Items
		}
	}
	s.carts[token] = cart
	return cart, nil
}

func (s *Store) persistLocked(ctx context.Context, token string, cart *Cart) error {
	data, err := json.Marshal(persistedCart{Items: cart.Items})
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, storageKey(strings.TrimSpace(token)), data)
}

func (s *Store) viewLocked(cart *Cart) Cart {
	view := Cart{Items: cart.Snapshot()}
	if cart.IsOpen() {
		view.Open()
	}
	return view
}

func storageKey(token string) string {
	return constants.CartKeyPrefix + token
}
