// Package extension 定义资产扩展调用的公共接口
//
// 📋 **扩展调用边界 (Extension Call Boundary)**
//
// 本包定义沙箱合约与宿主代币账本之间的窄接口，专注于：
//   - HostCaller：单一调用原语 call(selector, encoded_args) -> (status, encoded_result)
//   - Ledger：宿主侧账本（外部协作者，本模块不实现其记账逻辑）
//   - PSP22：绑定单一资产的标准代币接口
//   - Journal：扩展调用记录存储
//
// 🎯 **设计原则**
//   - 调用是同步、原子的：要么返回状态码，要么整个调用被中止（panic）
//   - 边界上没有超时、重试、取消语义
//   - 选择子与状态码是永久的外部契约
package extension

import (
	"context"

	"github.com/weisyn/assetbridge/pkg/types"
)

// HostCaller 扩展调用原语
//
// 每次调用都是独立的请求/响应，调用方不保留任何状态。
// 宿主无法完成调用时（如资源耗尽、协议不一致）直接中止当前调用栈，
// 因此这里没有 error 返回值。
type HostCaller interface {
	// Call 以选择子发起一次宿主调用
	//
	// 返回宿主状态码和（可能为空的）编码结果。
	Call(ctx context.Context, selector types.Selector, input []byte) (types.StatusCode, []byte)
}

// HostCallerFunc 函数适配器
type HostCallerFunc func(ctx context.Context, selector types.Selector, input []byte) (types.StatusCode, []byte)

// Call 实现 HostCaller
func (f HostCallerFunc) Call(ctx context.Context, selector types.Selector, input []byte) (types.StatusCode, []byte) {
	return f(ctx, selector, input)
}
