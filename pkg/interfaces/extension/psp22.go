package extension

import (
	"context"

	"github.com/weisyn/assetbridge/pkg/types"
)

// PSP22 绑定单一资产的标准代币接口
//
// 📋 **错误语义**：
//   - TotalSupply / BalanceOf / Allowance 没有错误通道，宿主失败时返回零值；
//     调用方不能把零值当作成功的证明
//   - 其余方法原样返回错误目录中的类型化错误
type PSP22 interface {
	TotalSupply(ctx context.Context) types.Balance
	BalanceOf(ctx context.Context, owner types.AccountID) types.Balance
	Allowance(ctx context.Context, owner, spender types.AccountID) types.Balance

	Transfer(ctx context.Context, to types.AccountID, value types.Balance) error
	TransferFrom(ctx context.Context, from, to types.AccountID, value types.Balance) error
	Approve(ctx context.Context, spender types.AccountID, value types.Balance) error
	IncreaseAllowance(ctx context.Context, spender types.AccountID, value types.Balance) error
	DecreaseAllowance(ctx context.Context, spender types.AccountID, value types.Balance) error

	TokenName(ctx context.Context) ([]byte, error)
	TokenSymbol(ctx context.Context) ([]byte, error)
	TokenDecimals(ctx context.Context) (uint8, error)

	Mint(ctx context.Context, to types.AccountID, value types.Balance) error
	Burn(ctx context.Context, from types.AccountID, value types.Balance) error
}
