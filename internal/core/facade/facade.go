// Package facade 提供绑定单一资产的 PSP22 门面
//
// 门面在构造时绑定资产ID，之后把每个 PSP22 方法转发给扩展调用门，
// 并在参数元组前补上资产ID。门面不做任何校验、不重试、不增加新的错误。
//
// ⚠️ TotalSupply / BalanceOf / Allowance 没有错误通道：宿主报告失败时返回零，
// 调用方无法区分"确实为零"与"查询失败"。
package facade

import (
	"context"

	"github.com/weisyn/assetbridge/internal/core/extension"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

// AssetFacade 绑定单一资产的 PSP22 门面
type AssetFacade struct {
	assetID types.AssetID
	gate    *extension.Gate
	logger  log.Logger
}

var _ ext.PSP22 = (*AssetFacade)(nil)

// New 创建门面
//
// 资产ID原样保存，构造时不发起宿主调用。logger 可为 nil。
func New(assetID types.AssetID, gate *extension.Gate, logger log.Logger) *AssetFacade {
	return &AssetFacade{assetID: assetID, gate: gate, logger: logger}
}

// AssetID 返回绑定的资产ID
func (f *AssetFacade) AssetID() types.AssetID {
	return f.assetID
}

// collapse 把查询失败折叠为零
func (f *AssetFacade) collapse(op string, b types.Balance, err error) types.Balance {
	if err == nil {
		return b
	}
	if f.logger != nil {
		f.logger.Debugf("查询失败折叠为零: asset=%s op=%s err=%v", f.assetID, op, err)
	}
	return types.Balance{}
}

// TotalSupply 总供应量，失败时为零
func (f *AssetFacade) TotalSupply(ctx context.Context) types.Balance {
	b, err := f.gate.TotalSupply(ctx, f.assetID)
	return f.collapse("total_supply", b, err)
}

// BalanceOf 账户余额，失败时为零
func (f *AssetFacade) BalanceOf(ctx context.Context, owner types.AccountID) types.Balance {
	b, err := f.gate.BalanceOf(ctx, f.assetID, owner)
	return f.collapse("balance_of", b, err)
}

// Allowance 授权额度，失败时为零
func (f *AssetFacade) Allowance(ctx context.Context, owner, spender types.AccountID) types.Balance {
	b, err := f.gate.Allowance(ctx, f.assetID, owner, spender)
	return f.collapse("allowance", b, err)
}

func (f *AssetFacade) Transfer(ctx context.Context, to types.AccountID, value types.Balance) error {
	return f.gate.Transfer(ctx, f.assetID, to, value)
}

func (f *AssetFacade) TransferFrom(ctx context.Context, from, to types.AccountID, value types.Balance) error {
	return f.gate.TransferFrom(ctx, f.assetID, from, to, value)
}

func (f *AssetFacade) Approve(ctx context.Context, spender types.AccountID, value types.Balance) error {
	return f.gate.Approve(ctx, f.assetID, spender, value)
}

func (f *AssetFacade) IncreaseAllowance(ctx context.Context, spender types.AccountID, value types.Balance) error {
	return f.gate.IncreaseAllowance(ctx, f.assetID, spender, value)
}

func (f *AssetFacade) DecreaseAllowance(ctx context.Context, spender types.AccountID, value types.Balance) error {
	return f.gate.DecreaseAllowance(ctx, f.assetID, spender, value)
}

func (f *AssetFacade) TokenName(ctx context.Context) ([]byte, error) {
	return f.gate.TokenName(ctx, f.assetID)
}

func (f *AssetFacade) TokenSymbol(ctx context.Context) ([]byte, error) {
	return f.gate.TokenSymbol(ctx, f.assetID)
}

func (f *AssetFacade) TokenDecimals(ctx context.Context) (uint8, error) {
	return f.gate.TokenDecimals(ctx, f.assetID)
}

// Mint 铸造，授权由宿主判断
func (f *AssetFacade) Mint(ctx context.Context, to types.AccountID, value types.Balance) error {
	return f.gate.Mint(ctx, f.assetID, to, value)
}

// Burn 销毁，授权由宿主判断
func (f *AssetFacade) Burn(ctx context.Context, from types.AccountID, value types.Balance) error {
	return f.gate.Burn(ctx, f.assetID, from, value)
}
