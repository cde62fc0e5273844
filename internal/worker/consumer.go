package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/emily-flower/api/internal/i18n"
	"github.com/emily-flower/api/internal/logger"
	"github.com/emily-flower/api/internal/provider"
	"github.com/emily-flower/api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
}

// handleOrderConfirmationEmail 给买家投递下单确认邮件。
// 收件人缺失、订单不存在等情况直接跳过，不触发重试。
func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	receiver := strings.TrimSpace(order.Email)
	if receiver == "" {
		logger.Debugw("worker_order_confirmation_skip_empty_receiver", "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_confirmation_skip_email_service_nil", "order_no", order.OrderNo)
		return nil
	}

	locale := i18n.Normalize(payload.Locale)
	if err := c.EmailService.SendOrderConfirmation(receiver, order.OrderNo, order.Summary, locale); err != nil {
		logger.Warnw("worker_order_confirmation_send_failed", "order_no", order.OrderNo, "error", err)
		return err
	}
	logger.Infow("worker_order_confirmation_sent", "order_no", order.OrderNo, "receiver", receiver)
	return nil
}
