package checkout

import "context"

// Payload 订单通知内容
type Payload struct {
	RecipientName  string `json:"recipient_name"`
	RecipientEmail string `json:"recipient_email"`
	RecipientPhone string `json:"recipient_phone"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

// Notifier 订单通知协作方。至多一次投递，失败由用户手动重试。
type Notifier interface {
	Send(ctx context.Context, payload Payload) error
}
