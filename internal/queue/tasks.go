package queue

import (
	"encoding/json"

	"github.com/emily-flower/api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmationEmail 买家下单确认邮件任务
	TaskOrderConfirmationEmail = constants.TaskOrderConfirmationEmail
)

// OrderConfirmationEmailPayload 买家确认邮件任务载荷
type OrderConfirmationEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Locale  string `json:"locale"`
}

// NewOrderConfirmationEmailTask 创建买家确认邮件任务
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmationEmail, body), nil
}
