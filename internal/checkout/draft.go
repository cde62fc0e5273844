package checkout

import (
	"fmt"
	"strings"
)

// Info 第一步收集的买家与收货信息
type Info struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Note          string `json:"note"`
}

// Validate 校验必填字段（姓名、电话、邮箱、地址），备注可选
func (i Info) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"recipient_name", i.RecipientName},
		{"phone", i.Phone},
		{"email", i.Email},
		{"address", i.Address},
	}
	for _, entry := range required {
		if strings.TrimSpace(entry.value) == "" {
			return fmt.Errorf("%w: %s", ErrFieldRequired, entry.field)
		}
	}
	return nil
}

// Draft 一次结算尝试期间的草稿，提交成功或放弃后丢弃
type Draft struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Note          string `json:"note"`
	PaymentMethod string `json:"payment_method"`
}

// applyInfo 写入第一步信息，保留已选支付方式
func (d *Draft) applyInfo(info Info) {
	d.RecipientName = strings.TrimSpace(info.RecipientName)
	d.Phone = strings.TrimSpace(info.Phone)
	d.Email = strings.TrimSpace(info.Email)
	d.Address = strings.TrimSpace(info.Address)
	d.Note = strings.TrimSpace(info.Note)
}
