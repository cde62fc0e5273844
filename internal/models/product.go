package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`                               // 主键
	CategoryID      uint           `gorm:"not null;index" json:"category_id"`                  // 分类ID
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`                   // 唯一标识
	NameJSON        JSON           `gorm:"type:json;not null" json:"name"`                     // 双语名称
	DescriptionJSON JSON           `gorm:"type:json" json:"description"`                       // 双语描述
	Price           Money          `gorm:"type:decimal(20,0);not null;default:0" json:"price"` // 售价（VND）
	OriginalPrice   *Money         `gorm:"type:decimal(20,0)" json:"original_price,omitempty"` // 划线价
	Image           string         `gorm:"type:varchar(500);not null" json:"image"`            // 主图
	Images          StringArray    `gorm:"type:json" json:"images"`                            // 图片数组
	Tag             string         `gorm:"type:varchar(50)" json:"tag,omitempty"`              // 角标（Bán chạy / Mới ...）
	Rating          float64        `gorm:"not null;default:0" json:"rating"`                   // 评分（0-5）
	Reviews         int            `gorm:"not null;default:0" json:"reviews"`                  // 评价数
	InStock         bool           `gorm:"default:true;index" json:"in_stock"`                 // 是否有货
	Featured        bool           `gorm:"default:false;index" json:"featured"`                // 是否首页推荐
	SortOrder       int            `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
