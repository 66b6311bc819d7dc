package extension

import (
	"context"

	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

// Gate 扩展调用门
//
// 每个方法对应目录中的一项操作：按参数元组编码，发起一次同步宿主调用，
// 然后解码状态码和载荷。Gate 不持有可变状态，可被任意多个门面共享。
type Gate struct {
	host   ext.HostCaller
	logger log.Logger
}

// NewGate 创建扩展调用门
func NewGate(host ext.HostCaller, logger log.Logger) *Gate {
	return &Gate{host: host, logger: logger}
}

// invoke 执行一次扩展调用
//
// 返回解码后的成功载荷，或错误目录中的变体；未知状态码与畸形载荷直接中止。
func (g *Gate) invoke(ctx context.Context, op *Operation, args ...any) (any, error) {
	input, err := op.EncodeArgs(args...)
	if err != nil {
		// 参数由本包的类型化方法构造，编码失败说明目录与方法不一致
		Abort(&ProtocolViolation{Kind: MalformedArgs, Operation: op.Name, Selector: op.Selector, Cause: err})
	}

	status, payload := g.host.Call(ctx, op.Selector, input)
	if g.logger != nil {
		g.logger.Debugf("扩展调用: op=%s selector=%s status=%d payload=%d字节",
			op.Name, op.Selector, uint32(status), len(payload))
	}

	if err := FromStatusCode(op, status); err != nil {
		// 失败时宿主载荷被丢弃
		return nil, err
	}

	out, err := op.DecodeResult(payload)
	if err != nil {
		Abort(&ProtocolViolation{Kind: MalformedPayload, Operation: op.Name, Selector: op.Selector, Cause: err})
	}
	return out, nil
}

// ==================== 元数据查询 ====================

// TokenName 查询资产名称
func (g *Gate) TokenName(ctx context.Context, asset types.AssetID) ([]byte, error) {
	out, err := g.invoke(ctx, OpTokenName, asset)
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

// TokenSymbol 查询资产符号
func (g *Gate) TokenSymbol(ctx context.Context, asset types.AssetID) ([]byte, error) {
	out, err := g.invoke(ctx, OpTokenSymbol, asset)
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

// TokenDecimals 查询资产精度
func (g *Gate) TokenDecimals(ctx context.Context, asset types.AssetID) (uint8, error) {
	out, err := g.invoke(ctx, OpTokenDecimals, asset)
	if err != nil {
		return 0, err
	}
	return out.(uint8), nil
}

// ==================== 余额查询 ====================

// TotalSupply 查询总供应量
func (g *Gate) TotalSupply(ctx context.Context, asset types.AssetID) (types.Balance, error) {
	return g.balance(g.invoke(ctx, OpTotalSupply, asset))
}

// BalanceOf 查询账户余额
func (g *Gate) BalanceOf(ctx context.Context, asset types.AssetID, owner types.AccountID) (types.Balance, error) {
	return g.balance(g.invoke(ctx, OpBalanceOf, asset, owner))
}

// Allowance 查询授权额度
func (g *Gate) Allowance(ctx context.Context, asset types.AssetID, owner, spender types.AccountID) (types.Balance, error) {
	return g.balance(g.invoke(ctx, OpAllowance, asset, owner, spender))
}

func (g *Gate) balance(out any, err error) (types.Balance, error) {
	if err != nil {
		return types.Balance{}, err
	}
	return out.(types.Balance), nil
}

// ==================== 变更操作 ====================

// Transfer 从调用者转账
func (g *Gate) Transfer(ctx context.Context, asset types.AssetID, to types.AccountID, value types.Balance) error {
	_, err := g.invoke(ctx, OpTransfer, asset, to, value)
	return err
}

// TransferFrom 代理转账
func (g *Gate) TransferFrom(ctx context.Context, asset types.AssetID, from, to types.AccountID, value types.Balance) error {
	_, err := g.invoke(ctx, OpTransferFrom, asset, from, to, value)
	return err
}

// Approve 设置授权额度
func (g *Gate) Approve(ctx context.Context, asset types.AssetID, spender types.AccountID, value types.Balance) error {
	_, err := g.invoke(ctx, OpApprove, asset, spender, value)
	return err
}

// IncreaseAllowance 增加授权额度
func (g *Gate) IncreaseAllowance(ctx context.Context, asset types.AssetID, spender types.AccountID, value types.Balance) error {
	_, err := g.invoke(ctx, OpIncreaseAllowance, asset, spender, value)
	return err
}

// DecreaseAllowance 减少授权额度
func (g *Gate) DecreaseAllowance(ctx context.Context, asset types.AssetID, spender types.AccountID, value types.Balance) error {
	_, err := g.invoke(ctx, OpDecreaseAllowance, asset, spender, value)
	return err
}

// Mint 铸造（授权由宿主账本判断）
func (g *Gate) Mint(ctx context.Context, asset types.AssetID, to types.AccountID, value types.Balance) error {
	_, err := g.invoke(ctx, OpMint, asset, to, value)
	return err
}

// Burn 销毁（授权由宿主账本判断）
func (g *Gate) Burn(ctx context.Context, asset types.AssetID, from types.AccountID, value types.Balance) error {
	_, err := g.invoke(ctx, OpBurn, asset, from, value)
	return err
}
