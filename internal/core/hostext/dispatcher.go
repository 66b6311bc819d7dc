package hostext

import (
	"context"

	"github.com/google/uuid"

	"github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/internal/core/infrastructure/clock"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	infraClock "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

// Dispatcher 宿主侧扩展调用分发器
//
// 📋 **处理流程**：
//  1. 按选择子查找目录项（目录外 → UnknownSelector 中止）
//  2. 按参数元组解码输入（失败 → MalformedArgs 中止）
//  3. 调用 Ledger；变更类操作的 origin 取自上下文
//  4. 账本错误映射为该操作的失败状态码，成功结果按返回形态编码
//  5. 更新指标，发布 CallRecord
//
// 账本错误不会跨越调用边界：合约侧只能看到状态码。
type Dispatcher struct {
	ledger ext.Ledger
	bus    event.EventBus
	logger log.Logger
	clock  infraClock.Clock
}

var _ ext.HostCaller = (*Dispatcher)(nil)

// Option 分发器选项
type Option func(*Dispatcher)

// WithClock 指定调用记录使用的时间源（默认系统时钟）
func WithClock(c infraClock.Clock) Option {
	return func(d *Dispatcher) {
		if c != nil {
			d.clock = c
		}
	}
}

// NewDispatcher 创建分发器，bus 与 logger 可为 nil
func NewDispatcher(ledger ext.Ledger, bus event.EventBus, logger log.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{ledger: ledger, bus: bus, logger: logger, clock: clock.NewSystemClock()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Call 实现 HostCaller
func (d *Dispatcher) Call(ctx context.Context, selector types.Selector, input []byte) (types.StatusCode, []byte) {
	start := d.clock.Now()

	op, ok := extension.OperationBySelector(selector)
	if !ok {
		d.abort(&extension.ProtocolViolation{Kind: extension.UnknownSelector, Selector: selector})
	}

	args, err := op.DecodeArgs(input)
	if err != nil {
		d.abort(&extension.ProtocolViolation{
			Kind: extension.MalformedArgs, Operation: op.Name, Selector: selector, Cause: err,
		})
	}

	status := types.StatusSuccess
	var output []byte

	result, err := d.execute(ctx, op, args)
	if err == nil {
		output, err = op.EncodeResult(result)
	}
	if err != nil {
		status = op.Failure.Code()
		output = nil
		if d.logger != nil {
			d.logger.Warnf("账本调用失败: op=%s status=%d err=%v", op.Name, uint32(status), err)
		}
	}

	elapsed := d.clock.Since(start)
	callsTotal.WithLabelValues(op.Name, statusLabel(status)).Inc()
	callDuration.WithLabelValues(op.Name).Observe(elapsed.Seconds())

	d.publish(&types.CallRecord{
		ID:        uuid.NewString(),
		Selector:  selector,
		Operation: op.Name,
		AssetID:   args[0].(types.AssetID),
		Status:    status,
		Input:     input,
		Output:    output,
		Duration:  elapsed,
		At:        start,
	})
	return status, output
}

// execute 把解码后的参数交给账本
func (d *Dispatcher) execute(ctx context.Context, op *extension.Operation, args []any) (any, error) {
	asset := args[0].(types.AssetID)
	origin, _ := CallerFromContext(ctx)

	account := func(i int) types.AccountID { return args[i].(types.AccountID) }
	balance := func(i int) types.Balance { return args[i].(types.Balance) }

	switch op.Selector {
	case extension.SelectorTokenName:
		return d.ledger.TokenName(ctx, asset)
	case extension.SelectorTokenSymbol:
		return d.ledger.TokenSymbol(ctx, asset)
	case extension.SelectorTokenDecimals:
		return d.ledger.TokenDecimals(ctx, asset)
	case extension.SelectorTotalSupply:
		return d.ledger.TotalSupply(ctx, asset)
	case extension.SelectorBalanceOf:
		return d.ledger.BalanceOf(ctx, asset, account(1))
	case extension.SelectorAllowance:
		return d.ledger.Allowance(ctx, asset, account(1), account(2))
	case extension.SelectorTransfer:
		return nil, d.ledger.Transfer(ctx, asset, origin, account(1), balance(2))
	case extension.SelectorTransferFrom:
		return nil, d.ledger.TransferFrom(ctx, asset, origin, account(1), account(2), balance(3))
	case extension.SelectorApprove:
		return nil, d.ledger.Approve(ctx, asset, origin, account(1), balance(2))
	case extension.SelectorIncreaseAllowance:
		return nil, d.ledger.IncreaseAllowance(ctx, asset, origin, account(1), balance(2))
	case extension.SelectorDecreaseAllowance:
		return nil, d.ledger.DecreaseAllowance(ctx, asset, origin, account(1), balance(2))
	case extension.SelectorMint:
		return nil, d.ledger.Mint(ctx, asset, origin, account(1), balance(2))
	case extension.SelectorBurn:
		return nil, d.ledger.Burn(ctx, asset, origin, account(1), balance(2))
	}

	d.abort(&extension.ProtocolViolation{Kind: extension.UnknownSelector, Operation: op.Name, Selector: op.Selector})
	return nil, nil
}

func (d *Dispatcher) abort(v *extension.ProtocolViolation) {
	violationsTotal.WithLabelValues(v.Kind.String()).Inc()
	if d.logger != nil {
		d.logger.Errorf("扩展调用中止: %v", v)
	}
	extension.Abort(v)
}

func (d *Dispatcher) publish(record *types.CallRecord) {
	if d.bus == nil {
		return
	}
	d.bus.Publish(event.EventTypeExtensionCall, record)
}

// statusLabel 状态码的指标标签
func statusLabel(status types.StatusCode) string {
	if status.IsSuccess() {
		return "Success"
	}
	if e, ok := extension.LookupStatus(status); ok {
		return e.Name()
	}
	return "Unknown"
}
