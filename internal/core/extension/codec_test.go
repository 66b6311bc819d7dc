package extension

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/pkg/types"
)

func account(b byte) types.AccountID {
	var a types.AccountID
	for i := range a {
		a[i] = b
	}
	return a
}

// TestEncodeArgs_Layout 线格式：u32 LE + 32 字节账户 + u128 LE
func TestEncodeArgs_Layout(t *testing.T) {
	input, err := OpTransfer.EncodeArgs(types.AssetID(7), account(0xAA), types.NewBalance(0x0102))
	require.NoError(t, err)
	require.Len(t, input, 4+32+16)

	assert.Equal(t, []byte{7, 0, 0, 0}, input[:4])
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 32), input[4:36])
	assert.Equal(t, append([]byte{0x02, 0x01}, make([]byte, 14)...), input[36:])
}

// TestArgs_RoundTrip 所有操作的参数编解码往返
func TestArgs_RoundTrip(t *testing.T) {
	for _, op := range Catalogue() {
		t.Run(op.Name, func(t *testing.T) {
			args := make([]any, 0, len(op.Params))
			for i, p := range op.Params {
				switch p.Kind {
				case ParamAsset:
					args = append(args, types.AssetID(0xDEADBEEF))
				case ParamAccount:
					args = append(args, account(byte(i+1)))
				case ParamBalance:
					v, err := types.ParseBalance("340282366920938463463374607431768211455")
					require.NoError(t, err)
					args = append(args, v)
				}
			}

			input, err := op.EncodeArgs(args...)
			require.NoError(t, err)

			decoded, err := op.DecodeArgs(input)
			require.NoError(t, err)
			assert.Equal(t, args, decoded)
		})
	}
}

func TestEncodeArgs_Mismatch(t *testing.T) {
	_, err := OpBalanceOf.EncodeArgs(types.AssetID(1))
	assert.ErrorIs(t, err, ErrArgCount)

	_, err = OpBalanceOf.EncodeArgs(types.AssetID(1), "alice")
	assert.ErrorIs(t, err, ErrArgType)

	_, err = OpTransfer.EncodeArgs(uint32(1), account(1), types.NewBalance(1))
	assert.ErrorIs(t, err, ErrArgType)
}

// TestDecodeArgs_Strict 输入不足或有多余字节都失败
func TestDecodeArgs_Strict(t *testing.T) {
	input, err := OpBalanceOf.EncodeArgs(types.AssetID(1), account(2))
	require.NoError(t, err)

	_, err = OpBalanceOf.DecodeArgs(input[:len(input)-1])
	assert.Error(t, err)

	_, err = OpBalanceOf.DecodeArgs(append(input, 0))
	assert.ErrorIs(t, err, ErrTrailingBytes)

	_, err = OpTotalSupply.DecodeArgs(nil)
	assert.Error(t, err)
}

// TestResult_RoundTrip 各返回形态的载荷往返
func TestResult_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		op      *Operation
		value   any
		payload []byte
	}{
		{"unit", OpTransfer, nil, nil},
		{"bytes", OpTokenName, []byte("Wes"), []byte{0x0c, 'W', 'e', 's'}},
		{"empty bytes", OpTokenSymbol, []byte{}, []byte{0x00}},
		{"u8", OpTokenDecimals, uint8(18), []byte{18}},
		{"balance", OpBalanceOf, types.NewBalance(500), append([]byte{0xF4, 0x01}, make([]byte, 14)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := tt.op.EncodeResult(tt.value)
			require.NoError(t, err)
			assert.Equal(t, len(tt.payload), len(payload))
			if len(tt.payload) > 0 {
				assert.Equal(t, tt.payload, payload)
			}

			out, err := tt.op.DecodeResult(payload)
			require.NoError(t, err)
			assert.Equal(t, tt.value, out)
		})
	}
}

// TestEncodeResult_LongBytes compact 长度前缀跨越单字节模式
func TestEncodeResult_LongBytes(t *testing.T) {
	name := bytes.Repeat([]byte{'x'}, 100)
	payload, err := OpTokenName.EncodeResult(name)
	require.NoError(t, err)
	// 100 << 2 | 0b01 = 0x0191（两字节模式）
	assert.Equal(t, []byte{0x91, 0x01}, payload[:2])

	out, err := OpTokenName.DecodeResult(payload)
	require.NoError(t, err)
	assert.Equal(t, name, out)
}

func TestDecodeResult_Strict(t *testing.T) {
	tests := []struct {
		name    string
		op      *Operation
		payload []byte
	}{
		{"short balance", OpTotalSupply, make([]byte, 15)},
		{"empty u8", OpTokenDecimals, nil},
		{"bytes short", OpTokenName, []byte{0x0c, 'W'}},
		{"bytes missing prefix", OpTokenName, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.DecodeResult(tt.payload)
			assert.Error(t, err)
		})
	}
}

// TestDecodeResult_IgnoresTrailingBytes 值之后的剩余字节不影响结果
func TestDecodeResult_IgnoresTrailingBytes(t *testing.T) {
	got, err := OpTokenDecimals.DecodeResult([]byte{12, 0})
	require.NoError(t, err)
	assert.Equal(t, uint8(12), got)

	got, err = OpTransfer.DecodeResult([]byte{0})
	require.NoError(t, err)
	assert.Nil(t, got)

	payload := append(append([]byte{0xF4, 0x01}, make([]byte, 14)...), 0xFF)
	got, err = OpBalanceOf.DecodeResult(payload)
	require.NoError(t, err)
	assert.True(t, got.(types.Balance).Equal(types.NewBalance(500)))

	got, err = OpTokenName.DecodeResult([]byte{0x0c, 'W', 'e', 's', 0x00})
	require.NoError(t, err)
	assert.Equal(t, []byte("Wes"), got)
}

func TestEncodeResult_TypeMismatch(t *testing.T) {
	_, err := OpTransfer.EncodeResult(uint8(1))
	assert.ErrorIs(t, err, ErrArgType)
	_, err = OpTokenName.EncodeResult("Wes")
	assert.ErrorIs(t, err, ErrArgType)
	_, err = OpTokenDecimals.EncodeResult(18)
	assert.ErrorIs(t, err, ErrArgType)
	_, err = OpBalanceOf.EncodeResult(uint64(1))
	assert.ErrorIs(t, err, ErrArgType)
}
