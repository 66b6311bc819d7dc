package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/mr-tron/base58"
)

// ==================== 资产与账户基础类型 ====================
//
// 🎯 **设计原则**：
//   - AssetID / AccountID / Balance 均为宿主账本定义的不透明值
//   - 本层只负责转发，不解释其位模式，不做余额运算
//   - Balance 固定为无符号128位（与宿主 u128 对齐），构造时拒绝溢出
//

// AssetID 宿主资产账本标识（u32）
//
// 在 Facade 构造时绑定，之后不可变；本地不做任何合法性校验。
type AssetID uint32

// String 返回十进制表示
func (id AssetID) String() string {
	return fmt.Sprintf("%d", uint32(id))
}

// AccountIDLength 账户标识长度（字节）
const AccountIDLength = 32

// AccountID 宿主账户标识（32字节）
type AccountID [AccountIDLength]byte

// AccountIDFromBytes 从字节切片构造账户标识
func AccountIDFromBytes(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDLength {
		return id, fmt.Errorf("账户标识长度错误: 期望%d字节, 实际%d字节", AccountIDLength, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseAccountID 解析账户标识
//
// 支持两种文本形式：
//   - "0x" 前缀的64位十六进制
//   - base58 编码的32字节
func ParseAccountID(s string) (AccountID, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		raw, err := hex.DecodeString(s[2:])
		if err != nil {
			return AccountID{}, fmt.Errorf("解析十六进制账户标识失败: %w", err)
		}
		return AccountIDFromBytes(raw)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return AccountID{}, fmt.Errorf("解析base58账户标识失败: %w", err)
	}
	return AccountIDFromBytes(raw)
}

// Bytes 返回账户标识的字节副本
func (a AccountID) Bytes() []byte {
	out := make([]byte, AccountIDLength)
	copy(out, a[:])
	return out
}

// String 返回 base58 表示
func (a AccountID) String() string {
	return base58.Encode(a[:])
}

// Hex 返回带 0x 前缀的十六进制表示
func (a AccountID) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText 实现 encoding.TextMarshaler
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (a *AccountID) UnmarshalText(text []byte) error {
	id, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// ==================== Balance ====================

// BalanceBits Balance 的位宽
const BalanceBits = 128

// BalanceLength Balance 编码后的字节长度（小端序）
const BalanceLength = BalanceBits / 8

// Balance 无符号128位数量
//
// 零值即为 0，可直接使用。
type Balance struct {
	v uint256.Int
}

// NewBalance 从 uint64 构造 Balance
func NewBalance(x uint64) Balance {
	var b Balance
	b.v.SetUint64(x)
	return b
}

// ParseBalance 解析十进制字符串
func ParseBalance(s string) (Balance, error) {
	v, err := uint256.FromDecimal(strings.TrimSpace(s))
	if err != nil {
		return Balance{}, fmt.Errorf("解析余额失败 %q: %w", s, err)
	}
	if v.BitLen() > BalanceBits {
		return Balance{}, fmt.Errorf("余额超出u128范围: %s", s)
	}
	return Balance{v: *v}, nil
}

// BalanceFromLittleEndian 从16字节小端序构造 Balance
func BalanceFromLittleEndian(le [BalanceLength]byte) Balance {
	be := make([]byte, BalanceLength)
	for i := 0; i < BalanceLength; i++ {
		be[i] = le[BalanceLength-1-i]
	}
	var b Balance
	b.v.SetBytes(be)
	return b
}

// LittleEndian 返回16字节小端序编码
func (b Balance) LittleEndian() [BalanceLength]byte {
	be := b.v.Bytes32()
	var le [BalanceLength]byte
	for i := 0; i < BalanceLength; i++ {
		le[i] = be[len(be)-1-i]
	}
	return le
}

// Uint64 返回 uint64 值；超出范围时 ok 为 false
func (b Balance) Uint64() (value uint64, ok bool) {
	return b.v.Uint64(), b.v.IsUint64()
}

// IsZero 是否为零
func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

// Equal 判断是否相等
func (b Balance) Equal(other Balance) bool {
	return b.v.Eq(&other.v)
}

// String 返回十进制表示
func (b Balance) String() string {
	return b.v.Dec()
}

// MarshalText 实现 encoding.TextMarshaler
func (b Balance) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (b *Balance) UnmarshalText(text []byte) error {
	parsed, err := ParseBalance(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
