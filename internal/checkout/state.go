package checkout

// State 结算流程状态
type State string

// 三步结算状态：填写信息 → 选择支付方式 → 完成
const (
	StateCollectingInfo   State = "collecting_info"
	StateSelectingPayment State = "selecting_payment"
	StateCompleted        State = "completed"
)

// Valid 是否为已知状态
func (s State) Valid() bool {
	switch s {
	case StateCollectingInfo, StateSelectingPayment, StateCompleted:
		return true
	}
	return false
}

// IsTerminal 是否为终态（当前结算尝试不再推进）
func (s State) IsTerminal() bool {
	return s == StateCompleted
}
