package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Money 统一金额类型（越南盾，整数金额，不使用小数位）
type Money struct {
	decimal.Decimal
}

// NewMoneyFromInt 从整数金额创建
func NewMoneyFromInt(amount int64) Money {
	return Money{Decimal: decimal.NewFromInt(amount)}
}

// NewMoneyFromDecimal 从 decimal 创建金额
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(0)}
}

// Mul 按数量计算行金额
func (m Money) Mul(quantity int) Money {
	return Money{Decimal: m.Decimal.Mul(decimal.NewFromInt(int64(quantity))).Round(0)}
}

// Add 金额相加
func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal).Round(0)}
}

// MarshalJSON 统一输出整数
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.Round(0).StringFixed(0)), nil
}

// UnmarshalJSON 解析金额（字符串或数字）
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d.Round(0)
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}
	m.Decimal = d.Round(0)
	return nil
}

// Value 用于数据库写入
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(0).Value()
}

// Scan 用于数据库读取
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(0)
	return nil
}

// String 返回整数格式
func (m Money) String() string {
	return m.Decimal.Round(0).StringFixed(0)
}

// Format 返回 vi-VN 千分位格式（450000 -> "450.000"）
func (m Money) Format() string {
	digits := m.Decimal.Round(0).StringFixed(0)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	formatted := strings.Join(groups, ".")
	if negative {
		return "-" + formatted
	}
	return formatted
}
