package extension

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/weisyn/assetbridge/pkg/types"
)

// ============================================================================
// SCALE 编解码
// ============================================================================
//
// 📋 **线格式**：
//   - AssetId   → u32 小端
//   - AccountId → 32 字节原样
//   - Balance   → u128 小端（16 字节）
//   - 字节序列  → compact 长度 + 内容
//   - u8        → 单字节
//   - unit      → 空载荷
//
// 解码是严格的：输入不足或有多余字节都视为编解码失败。

var (
	// ErrArgCount 参数个数与目录不符
	ErrArgCount = errors.New("argument count mismatch")
	// ErrArgType 参数类型与目录不符
	ErrArgType = errors.New("argument type mismatch")
	// ErrTrailingBytes 解码后仍有剩余字节
	ErrTrailingBytes = errors.New("trailing bytes after decode")
)

// EncodeArgs 按参数元组顺序编码参数
//
// 参数类型必须依次为 types.AssetID / types.AccountID / types.Balance。
func (op *Operation) EncodeArgs(args ...any) ([]byte, error) {
	if len(args) != len(op.Params) {
		return nil, fmt.Errorf("%s: %w: want %d, got %d", op.Name, ErrArgCount, len(op.Params), len(args))
	}

	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)
	for i, p := range op.Params {
		if err := encodeParam(enc, p.Kind, args[i]); err != nil {
			return nil, fmt.Errorf("%s: encode %s: %w", op.Name, p.Name, err)
		}
	}
	return buf.Bytes(), nil
}

// DecodeArgs 按参数元组顺序解码参数
func (op *Operation) DecodeArgs(input []byte) ([]any, error) {
	reader := bytes.NewReader(input)
	dec := scale.NewDecoder(reader)

	args := make([]any, 0, len(op.Params))
	for _, p := range op.Params {
		arg, err := decodeParam(dec, p.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s: decode %s: %w", op.Name, p.Name, err)
		}
		args = append(args, arg)
	}
	if reader.Len() != 0 {
		return nil, fmt.Errorf("%s: %w (%d)", op.Name, ErrTrailingBytes, reader.Len())
	}
	return args, nil
}

// EncodeResult 按返回形态编码成功载荷
//
// ReturnUnit 接受 nil；ReturnBytes 接受 []byte；ReturnU8 接受 uint8；
// ReturnBalance 接受 types.Balance。
func (op *Operation) EncodeResult(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)

	switch op.Returns {
	case ReturnUnit:
		if v != nil {
			return nil, fmt.Errorf("%s: %w: unit result, got %T", op.Name, ErrArgType, v)
		}
		return nil, nil
	case ReturnBytes:
		b, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("%s: %w: want []byte, got %T", op.Name, ErrArgType, v)
		}
		if err := encodeBytes(enc, b); err != nil {
			return nil, err
		}
	case ReturnU8:
		u, ok := v.(uint8)
		if !ok {
			return nil, fmt.Errorf("%s: %w: want uint8, got %T", op.Name, ErrArgType, v)
		}
		if err := enc.Encode(u); err != nil {
			return nil, err
		}
	case ReturnBalance:
		if err := encodeParam(enc, ParamBalance, v); err != nil {
			return nil, fmt.Errorf("%s: %w", op.Name, err)
		}
	default:
		return nil, fmt.Errorf("%s: unknown return kind %d", op.Name, op.Returns)
	}
	return buf.Bytes(), nil
}

// DecodeResult 按返回形态解码成功载荷
//
// 返回值类型与 EncodeResult 的输入一一对应（unit 返回 nil）。
// 与 DecodeArgs 不同，值之后的剩余字节被忽略，只有值本身无法解码才失败。
func (op *Operation) DecodeResult(payload []byte) (any, error) {
	reader := bytes.NewReader(payload)
	dec := scale.NewDecoder(reader)

	var (
		out any
		err error
	)
	switch op.Returns {
	case ReturnUnit:
		out = nil
	case ReturnBytes:
		out, err = decodeBytes(dec)
	case ReturnU8:
		var u uint8
		err = dec.Decode(&u)
		out = u
	case ReturnBalance:
		out, err = decodeParam(dec, ParamBalance)
	default:
		err = fmt.Errorf("unknown return kind %d", op.Returns)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: decode result: %w", op.Name, err)
	}
	return out, nil
}

func encodeParam(enc *scale.Encoder, kind ParamKind, arg any) error {
	switch kind {
	case ParamAsset:
		id, ok := arg.(types.AssetID)
		if !ok {
			return fmt.Errorf("%w: want AssetID, got %T", ErrArgType, arg)
		}
		return enc.Encode(uint32(id))
	case ParamAccount:
		account, ok := arg.(types.AccountID)
		if !ok {
			return fmt.Errorf("%w: want AccountID, got %T", ErrArgType, arg)
		}
		return enc.Write(account[:])
	case ParamBalance:
		balance, ok := arg.(types.Balance)
		if !ok {
			return fmt.Errorf("%w: want Balance, got %T", ErrArgType, arg)
		}
		le := balance.LittleEndian()
		return enc.Write(le[:])
	default:
		return fmt.Errorf("unknown param kind %d", kind)
	}
}

func decodeParam(dec *scale.Decoder, kind ParamKind) (any, error) {
	switch kind {
	case ParamAsset:
		var id uint32
		if err := dec.Decode(&id); err != nil {
			return nil, err
		}
		return types.AssetID(id), nil
	case ParamAccount:
		var account types.AccountID
		if err := dec.Read(account[:]); err != nil {
			return nil, err
		}
		return account, nil
	case ParamBalance:
		var le [types.BalanceLength]byte
		if err := dec.Read(le[:]); err != nil {
			return nil, err
		}
		return types.BalanceFromLittleEndian(le), nil
	default:
		return nil, fmt.Errorf("unknown param kind %d", kind)
	}
}

func encodeBytes(enc *scale.Encoder, b []byte) error {
	if err := enc.EncodeUintCompact(*new(big.Int).SetInt64(int64(len(b)))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return enc.Write(b)
}

func decodeBytes(dec *scale.Decoder) ([]byte, error) {
	n, err := dec.DecodeUintCompact()
	if err != nil {
		return nil, err
	}
	if !n.IsUint64() || n.Uint64() > maxBytesLen {
		return nil, fmt.Errorf("byte sequence length %s out of range", n)
	}
	b := make([]byte, n.Uint64())
	if len(b) == 0 {
		return b, nil
	}
	if err := dec.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// maxBytesLen 字节序列长度上限，防止畸形长度前缀触发超大分配
const maxBytesLen = 1 << 20
