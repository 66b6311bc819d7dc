// Package hostext 实现扩展调用门的宿主侧
//
// Dispatcher 按选择子查找目录项、解码参数、调用可替换的 Ledger，
// 再把账本结果编码为状态码与载荷。每次调用都会更新监控指标并在事件总线上
// 发布一条 CallRecord。
package hostext

import (
	"context"

	"github.com/weisyn/assetbridge/pkg/types"
)

type callerKey struct{}

// WithCaller 在上下文中记录发起调用的合约账户
func WithCaller(ctx context.Context, origin types.AccountID) context.Context {
	return context.WithValue(ctx, callerKey{}, origin)
}

// CallerFromContext 取出发起调用的合约账户
func CallerFromContext(ctx context.Context) (types.AccountID, bool) {
	origin, ok := ctx.Value(callerKey{}).(types.AccountID)
	return origin, ok
}
