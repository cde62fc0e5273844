package checkout

import "errors"

// 结算流程哨兵错误
var (
	ErrCartEmpty            = errors.New("checkout: cart is empty")
	ErrFlowNotFound         = errors.New("checkout: no open flow")
	ErrInvalidState         = errors.New("checkout: operation not allowed in current state")
	ErrFieldRequired        = errors.New("checkout: required field missing")
	ErrInvalidPaymentMethod = errors.New("checkout: invalid payment method")
	ErrSubmitInFlight       = errors.New("checkout: submit already in flight")
	ErrNotifyFailed         = errors.New("checkout: order notification failed")
)
