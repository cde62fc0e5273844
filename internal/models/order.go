package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（结算流程提交成功后落库）
type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo       string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	RecipientName string         `gorm:"type:varchar(200);not null" json:"recipient_name"`          // 收件人
	Phone         string         `gorm:"type:varchar(50);not null" json:"phone"`                    // 电话
	Email         string         `gorm:"type:varchar(200);not null;index" json:"email"`             // 邮箱
	Address       string         `gorm:"type:varchar(500);not null" json:"address"`                 // 收货地址
	Note          string         `gorm:"type:varchar(1000)" json:"note,omitempty"`                  // 备注
	PaymentMethod string         `gorm:"type:varchar(20);not null" json:"payment_method"`           // 支付方式（cod/bank）
	Status        string         `gorm:"index;not null" json:"status"`                              // 订单状态
	TotalItems    int            `gorm:"not null;default:0" json:"total_items"`                     // 商品总件数
	TotalAmount   Money          `gorm:"type:decimal(20,0);not null;default:0" json:"total_amount"` // 订单总额（VND）
	Summary       string         `gorm:"type:text" json:"summary"`                                  // 提交时的订单摘要文本
	ClientIP      string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`               // 下单客户端IP
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
