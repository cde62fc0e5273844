package models

// OrderItem 订单项表（下单时的商品快照）
type OrderItem struct {
	ID        uint   `gorm:"primarykey" json:"id"`                                   // 主键
	OrderID   uint   `gorm:"not null;index" json:"order_id"`                         // 订单ID
	ProductID string `gorm:"type:varchar(50);not null" json:"product_id"`            // 商品标识（快照）
	Name      string `gorm:"type:varchar(300);not null" json:"name"`                 // 商品名（快照）
	Slug      string `gorm:"type:varchar(300)" json:"slug"`                          // 商品 slug（快照）
	Image     string `gorm:"type:varchar(500)" json:"image"`                         // 商品图（快照）
	UnitPrice Money  `gorm:"type:decimal(20,0);not null;default:0" json:"unit_price"` // 加购时单价
	Quantity  int    `gorm:"not null" json:"quantity"`                               // 数量
	LineTotal Money  `gorm:"type:decimal(20,0);not null;default:0" json:"line_total"` // 行金额
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
