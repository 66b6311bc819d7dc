package facade

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/weisyn/assetbridge/internal/core/extension"
	corelog "github.com/weisyn/assetbridge/internal/core/infrastructure/log"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

type call struct {
	selector types.Selector
	input    []byte
}

// recordingHost 按选择子返回预设响应
func recordingHost(status types.StatusCode, payloads map[types.Selector][]byte, calls *[]call) ext.HostCaller {
	return ext.HostCallerFunc(func(_ context.Context, selector types.Selector, input []byte) (types.StatusCode, []byte) {
		*calls = append(*calls, call{selector: selector, input: append([]byte(nil), input...)})
		return status, payloads[selector]
	})
}

func account(b byte) types.AccountID {
	var a types.AccountID
	a[0] = b
	return a
}

func TestNew_NoHostCall(t *testing.T) {
	var calls []call
	f := New(7, extension.NewGate(recordingHost(0, nil, &calls), nil), nil)
	assert.Equal(t, types.AssetID(7), f.AssetID())
	assert.Empty(t, calls)
}

// TestFacade_ForwardsAssetID 13 个方法都以绑定的资产ID作为第一个参数
func TestFacade_ForwardsAssetID(t *testing.T) {
	ctx := context.Background()
	const assetID types.AssetID = 0xCAFE

	payloads := map[types.Selector][]byte{
		extension.SelectorTokenName:     {0x00},
		extension.SelectorTokenSymbol:   {0x00},
		extension.SelectorTokenDecimals: {0x00},
		extension.SelectorTotalSupply:   make([]byte, 16),
		extension.SelectorBalanceOf:     make([]byte, 16),
		extension.SelectorAllowance:     make([]byte, 16),
	}
	var calls []call
	f := New(assetID, extension.NewGate(recordingHost(0, payloads, &calls), nil), nil)

	a, b := account(1), account(2)
	v := types.NewBalance(3)

	f.TotalSupply(ctx)
	f.BalanceOf(ctx, a)
	f.Allowance(ctx, a, b)
	require.NoError(t, f.Transfer(ctx, a, v))
	require.NoError(t, f.TransferFrom(ctx, a, b, v))
	require.NoError(t, f.Approve(ctx, b, v))
	require.NoError(t, f.IncreaseAllowance(ctx, b, v))
	require.NoError(t, f.DecreaseAllowance(ctx, b, v))
	_, err := f.TokenName(ctx)
	require.NoError(t, err)
	_, err = f.TokenSymbol(ctx)
	require.NoError(t, err)
	_, err = f.TokenDecimals(ctx)
	require.NoError(t, err)
	require.NoError(t, f.Mint(ctx, a, v))
	require.NoError(t, f.Burn(ctx, a, v))

	require.Len(t, calls, len(extension.Catalogue()))
	seen := make(map[types.Selector]bool)
	for _, c := range calls {
		require.GreaterOrEqual(t, len(c.input), 4)
		assert.Equal(t, uint32(assetID), binary.LittleEndian.Uint32(c.input[:4]), c.selector.String())
		seen[c.selector] = true
	}
	for _, op := range extension.Catalogue() {
		assert.True(t, seen[op.Selector], op.Name)
	}
}

// TestFacade_BalanceOf 资产7中余额500
func TestFacade_BalanceOf(t *testing.T) {
	le := types.NewBalance(500).LittleEndian()
	var calls []call
	f := New(7, extension.NewGate(recordingHost(0, map[types.Selector][]byte{
		extension.SelectorBalanceOf: le[:],
	}, &calls), nil), nil)

	assert.True(t, f.BalanceOf(context.Background(), account(0xA1)).Equal(types.NewBalance(500)))
}

// TestFacade_QueryCollapse 三项余额查询失败时折叠为零并记录调试日志
func TestFacade_QueryCollapse(t *testing.T) {
	ctx := context.Background()
	core, recorded := observer.New(zap.DebugLevel)
	logger := corelog.NewFromZap(zap.New(core))

	var calls []call
	f := New(7, extension.NewGate(recordingHost(2, nil, &calls), nil), logger)

	assert.True(t, f.TotalSupply(ctx).IsZero())
	assert.True(t, f.BalanceOf(ctx, account(1)).IsZero())
	assert.True(t, f.Allowance(ctx, account(1), account(2)).IsZero())
	assert.Len(t, calls, 3)
	assert.Equal(t, 3, recorded.Len())
}

// TestFacade_PropagatesTypedErrors 其余方法原样返回类型化错误
func TestFacade_PropagatesTypedErrors(t *testing.T) {
	ctx := context.Background()
	var calls []call

	f := New(7, extension.NewGate(recordingHost(4, nil, &calls), nil), nil)
	assert.Equal(t, extension.ErrTransferFailed, f.Transfer(ctx, account(0xB0), types.NewBalance(1000)))
	assert.Equal(t, extension.ErrTransferFailed, f.Mint(ctx, account(0xB0), types.NewBalance(1)))

	f = New(7, extension.NewGate(recordingHost(9, nil, &calls), nil), nil)
	_, err := f.TokenName(ctx)
	assert.Equal(t, extension.ErrTokenNameFailed, err)

	f = New(7, extension.NewGate(recordingHost(11, nil, &calls), nil), nil)
	_, err = f.TokenDecimals(ctx)
	assert.Equal(t, extension.ErrTokenDecimalsFailed, err)
}

// TestFacade_ViolationNotCollapsed 未知状态码不会被折叠为零
func TestFacade_ViolationNotCollapsed(t *testing.T) {
	var calls []call
	f := New(7, extension.NewGate(recordingHost(255, nil, &calls), nil), nil)
	assert.Panics(t, func() { f.BalanceOf(context.Background(), account(1)) })
}
