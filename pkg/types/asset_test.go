package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBalance_LittleEndianRoundTrip 测试u128小端序编码往返
func TestBalance_LittleEndianRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"零", "0"},
		{"小值", "500"},
		{"uint64最大值", "18446744073709551615"},
		{"跨越64位", "18446744073709551616"},
		{"u128最大值", "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBalance(tt.in)
			require.NoError(t, err)

			le := b.LittleEndian()
			back := BalanceFromLittleEndian(le)
			assert.True(t, b.Equal(back), "往返后应相等")
			assert.Equal(t, tt.in, back.String())
		})
	}
}

// TestBalance_LittleEndianLayout 测试字节布局
func TestBalance_LittleEndianLayout(t *testing.T) {
	le := NewBalance(0x0102).LittleEndian()
	assert.Equal(t, byte(0x02), le[0])
	assert.Equal(t, byte(0x01), le[1])
	for i := 2; i < BalanceLength; i++ {
		assert.Zero(t, le[i])
	}
}

// TestParseBalance_Overflow 测试超出u128的值被拒绝
func TestParseBalance_Overflow(t *testing.T) {
	_, err := ParseBalance("340282366920938463463374607431768211456")
	assert.Error(t, err)

	_, err = ParseBalance("not-a-number")
	assert.Error(t, err)
}

// TestBalance_Uint64 测试uint64转换
func TestBalance_Uint64(t *testing.T) {
	v, ok := NewBalance(42).Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), v)

	big, err := ParseBalance("18446744073709551616")
	require.NoError(t, err)
	_, ok = big.Uint64()
	assert.False(t, ok)

	var zero Balance
	assert.True(t, zero.IsZero())
}

// TestParseAccountID 测试账户标识的两种文本形式
func TestParseAccountID(t *testing.T) {
	var id AccountID
	for i := range id {
		id[i] = byte(i)
	}

	fromHex, err := ParseAccountID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, fromHex)

	fromB58, err := ParseAccountID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, fromB58)

	_, err = ParseAccountID("0x" + strings.Repeat("ab", 31))
	assert.Error(t, err, "31字节应该被拒绝")

	_, err = ParseAccountID("0xzz")
	assert.Error(t, err)
}

// TestAccountID_TextMarshaling 测试文本编解码
func TestAccountID_TextMarshaling(t *testing.T) {
	id := AccountID{1, 2, 3}
	text, err := id.MarshalText()
	require.NoError(t, err)

	var back AccountID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, id, back)
}

// TestSelector_String 测试选择子格式
func TestSelector_String(t *testing.T) {
	assert.Equal(t, "0x3d26", Selector(0x3d26).String())
	assert.Equal(t, "0x00ff", Selector(0xff).String())
}
