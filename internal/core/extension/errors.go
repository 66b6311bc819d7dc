package extension

import (
	"fmt"

	"github.com/weisyn/assetbridge/pkg/types"
)

// ============================================================================
// 错误目录
// ============================================================================
//
// 每个已公开的非零状态码对应唯一的错误变体，状态码即变体的数值。
// 状态码是永久契约：不得复用，不得重新编号。
//
// 📋 **状态码**：
//   - 1-3:  查询失败（TotalSupply / BalanceOf / Allowance）
//   - 4-8:  变更失败（Transfer / TransferFrom / Approve / Increase / Decrease）
//   - 9-11: 元数据查询失败（TokenName / TokenSymbol / TokenDecimals）
//
// 未列出的状态码不是错误，而是协议违例（见 violation.go）。

// Error 扩展调用错误目录
type Error types.StatusCode

const (
	ErrTotalSupplyFailed       Error = 1
	ErrBalanceOfFailed         Error = 2
	ErrAllowanceFailed         Error = 3
	ErrTransferFailed          Error = 4
	ErrTransferFromFailed      Error = 5
	ErrApproveFailed           Error = 6
	ErrIncreaseAllowanceFailed Error = 7
	ErrDecreaseAllowanceFailed Error = 8
	ErrTokenNameFailed         Error = 9
	ErrTokenSymbolFailed       Error = 10
	ErrTokenDecimalsFailed     Error = 11
)

var errorNames = map[Error]string{
	ErrTotalSupplyFailed:       "TotalSupplyFailed",
	ErrBalanceOfFailed:         "BalanceOfFailed",
	ErrAllowanceFailed:         "AllowanceFailed",
	ErrTransferFailed:          "TransferFailed",
	ErrTransferFromFailed:      "TransferFromFailed",
	ErrApproveFailed:           "ApproveFailed",
	ErrIncreaseAllowanceFailed: "IncreaseAllowanceFailed",
	ErrDecreaseAllowanceFailed: "DecreaseAllowanceFailed",
	ErrTokenNameFailed:         "TokenNameFailed",
	ErrTokenSymbolFailed:       "TokenSymbolFailed",
	ErrTokenDecimalsFailed:     "TokenDecimalsFailed",
}

// Errors 返回全部错误变体（按状态码升序）
func Errors() []Error {
	out := make([]Error, 0, len(errorNames))
	for code := ErrTotalSupplyFailed; code <= ErrTokenDecimalsFailed; code++ {
		out = append(out, code)
	}
	return out
}

// Error 实现 error 接口
func (e Error) Error() string {
	return fmt.Sprintf("psp22 extension: %s (status %d)", e.Name(), uint32(e))
}

// Code 返回对应的宿主状态码
func (e Error) Code() types.StatusCode {
	return types.StatusCode(e)
}

// Name 返回变体名
func (e Error) Name() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Error(%d)", uint32(e))
}

// LookupStatus 查找非零状态码对应的错误变体
//
// 状态码为 0 或未公开时返回 false。
func LookupStatus(code types.StatusCode) (Error, bool) {
	e := Error(code)
	if _, ok := errorNames[e]; !ok {
		return 0, false
	}
	return e, true
}

// FromStatusCode 将宿主状态码解码为调用结果
//
//   - 0 返回 nil
//   - 1-11 返回对应的错误变体（与 op 无关，任何已公开变体都被接受）
//   - 其他值中止当前调用（UnknownStatus 协议违例）
func FromStatusCode(op *Operation, code types.StatusCode) error {
	if code.IsSuccess() {
		return nil
	}
	if e, ok := LookupStatus(code); ok {
		return e
	}
	v := &ProtocolViolation{Kind: UnknownStatus, Status: code}
	if op != nil {
		v.Operation = op.Name
		v.Selector = op.Selector
	}
	Abort(v)
	return nil
}
