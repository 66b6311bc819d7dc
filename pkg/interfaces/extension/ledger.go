package extension

import (
	"context"

	"github.com/weisyn/assetbridge/pkg/types"
)

// Ledger 宿主侧可替换代币账本
//
// 账本是外部协作者：余额、供应量、铸造/销毁授权均由其负责，并被视为正确且原子。
// 宿主侧分发器只负责把解码后的参数交给账本，再把账本的错误映射为状态码。
//
// 变更类方法的 origin 为发起调用的合约账户。
type Ledger interface {
	TokenName(ctx context.Context, asset types.AssetID) ([]byte, error)
	TokenSymbol(ctx context.Context, asset types.AssetID) ([]byte, error)
	TokenDecimals(ctx context.Context, asset types.AssetID) (uint8, error)

	TotalSupply(ctx context.Context, asset types.AssetID) (types.Balance, error)
	BalanceOf(ctx context.Context, asset types.AssetID, owner types.AccountID) (types.Balance, error)
	Allowance(ctx context.Context, asset types.AssetID, owner, spender types.AccountID) (types.Balance, error)

	Transfer(ctx context.Context, asset types.AssetID, origin, to types.AccountID, value types.Balance) error
	TransferFrom(ctx context.Context, asset types.AssetID, origin, from, to types.AccountID, value types.Balance) error
	Approve(ctx context.Context, asset types.AssetID, origin, spender types.AccountID, value types.Balance) error
	IncreaseAllowance(ctx context.Context, asset types.AssetID, origin, spender types.AccountID, value types.Balance) error
	DecreaseAllowance(ctx context.Context, asset types.AssetID, origin, spender types.AccountID, value types.Balance) error
	Mint(ctx context.Context, asset types.AssetID, origin, to types.AccountID, value types.Balance) error
	Burn(ctx context.Context, asset types.AssetID, origin, from types.AccountID, value types.Balance) error
}
