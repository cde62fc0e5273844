package constants

// 支付方式常量
const (
	PaymentMethodCOD  = "cod"  // 货到付款
	PaymentMethodBank = "bank" // 银行转账
)

// 订单状态常量
const (
	OrderStatusSubmitted = "submitted"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// 异步任务名称常量
const (
	TaskOrderConfirmationEmail = "order:confirmation_email"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 设置键常量
const (
	SettingKeySMTP = "smtp"
)

// 购物车常量
const (
	// CartKeyPrefix 购物车持久化 key 前缀（拼接购物车 token）
	CartKeyPrefix = "cart:"
	// CartTokenHeader 前端携带购物车标识的请求头
	CartTokenHeader = "X-Cart-Token"
)
