package cartstore

import (
	"strings"

	"github.com/emily-flower/api/internal/models"
)

// Item 购物车项（加购时的商品快照）
type Item struct {
	ProductID string       `json:"product_id"` // 商品标识
	Name      string       `json:"name"`       // 商品名
	Slug      string       `json:"slug"`       // 商品 slug
	Image     string       `json:"image"`      // 商品图
	Category  string       `json:"category"`   // 分类名（展示用）
	Price     models.Money `json:"price"`      // 加购时单价
	Quantity  int          `json:"quantity"`   // 数量
}

// LineTotal 行金额
func (i Item) LineTotal() models.Money {
	return i.Price.Mul(i.Quantity)
}

// Cart 购物车聚合，同一商品最多一条记录，保持插入顺序
type Cart struct {
	Items []Item `json:"items"`

	open bool // 抽屉展开状态，不持久化
}

// AddItem 加入商品：已存在则数量累加，数量最小为 1
func (c *Cart) AddItem(item Item) {
	if strings.TrimSpace(item.ProductID) == "" {
		return
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == item.ProductID {
			c.Items[idx].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity 更新数量，数量 <= 0 等价于移除
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			return
		}
	}
}

// RemoveItem 移除商品，不存在时为空操作
func (c *Cart) RemoveItem(productID string) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.Items = nil
}

// Find 查找购物车项
func (c *Cart) Find(productID string) *Item {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return &c.Items[idx]
		}
	}
	return nil
}

// TotalItems 商品总件数（每次调用重新计算）
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice 商品总金额（每次调用重新计算）
func (c *Cart) TotalPrice() models.Money {
	total := models.NewMoneyFromInt(0)
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// IsEmpty 是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Open 展开购物车抽屉
func (c *Cart) Open() {
	c.open = true
}

// Close 收起购物车抽屉
func (c *Cart) Close() {
	c.open = false
}

// IsOpen 抽屉是否展开
func (c *Cart) IsOpen() bool {
	return c.open
}

// Snapshot 深拷贝当前购物车项，用于结算快照
func (c *Cart) Snapshot() []Item {
	if len(c.Items) == 0 {
		return nil
	}
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return items
}
