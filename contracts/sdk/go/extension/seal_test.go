package extension

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreext "github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

func TestFuncID(t *testing.T) {
	assert.Equal(t, uint32(0x00016568), FuncID(1, 0x6568))
	assert.Equal(t, uint32(0x0000db20), FuncID(0, coreext.SelectorTransfer))
	assert.Equal(t, uint32(0xffff9e55), FuncID(0xffff, coreext.SelectorBurn))
}

// TestSealHost_Gate 合约侧调用门经由 SealHost 发起调用
func TestSealHost_Gate(t *testing.T) {
	var gotFuncID uint32
	var gotInput []byte

	host := NewSealHost(2)
	host.raw = func(funcID uint32, input []byte, output []byte) (uint32, uint32) {
		gotFuncID = funcID
		gotInput = append([]byte(nil), input...)
		n := copy(output, []byte{0x0c, 'W', 'e', 's'})
		return 0, uint32(n)
	}

	gate := coreext.NewGate(host, nil)
	name, err := gate.TokenName(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("Wes"), name)
	assert.Equal(t, FuncID(2, coreext.SelectorTokenName), gotFuncID)
	assert.Equal(t, []byte{7, 0, 0, 0}, gotInput)
}

func TestSealHost_Status(t *testing.T) {
	host := NewSealHost(0).WithOutputCapacity(8)
	host.raw = func(_ uint32, _ []byte, output []byte) (uint32, uint32) {
		assert.Len(t, output, 8)
		return 4, 0
	}

	status, out := host.Call(context.Background(), coreext.SelectorTransfer, nil)
	assert.Equal(t, types.StatusCode(4), status)
	assert.Empty(t, out)
}

// TestSealHost_Placeholder 非 WASM 构建中的调用直接陷入，而不是伪造成功状态
func TestSealHost_Placeholder(t *testing.T) {
	assert.PanicsWithValue(t, ErrNoSealHost, func() {
		NewSealHost(0).Call(context.Background(), coreext.SelectorTotalSupply, []byte{1, 0, 0, 0})
	})

	// 经由调用门时同样是陷入，不会被当作 MalformedPayload 协议违例恢复
	gate := coreext.NewGate(NewSealHost(0), nil)
	assert.PanicsWithValue(t, ErrNoSealHost, func() {
		run := func() (err error) {
			defer coreext.Recover(&err)
			_, err = gate.TokenDecimals(context.Background(), 7)
			return err
		}
		_ = run()
	})
}
