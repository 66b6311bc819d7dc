// Package extension 实现资产扩展调用门（Extension Gate）
//
// 📋 **职责**
//   - 固定的 13 项操作目录：选择子、参数元组、返回形态
//   - 参数与结果的 SCALE 编解码
//   - 宿主状态码到错误目录的解码
//   - 协议违例（未知状态码、畸形载荷）的中止机制
//
// 调用门本身无状态：每次调用都是一次独立的同步宿主调用，
// 不缓存、不重试、不批量。
package extension

import (
	"github.com/weisyn/assetbridge/pkg/types"
)

// ParamKind 参数编码类型
type ParamKind uint8

const (
	ParamAsset   ParamKind = iota + 1 // u32 资产ID
	ParamAccount                      // 32字节账户ID
	ParamBalance                      // u128 余额
)

// String 返回参数类型名
func (k ParamKind) String() string {
	switch k {
	case ParamAsset:
		return "AssetId"
	case ParamAccount:
		return "AccountId"
	case ParamBalance:
		return "Balance"
	default:
		return "unknown"
	}
}

// Param 操作参数描述
type Param struct {
	Name string
	Kind ParamKind
}

// ReturnKind 成功载荷形态
type ReturnKind uint8

const (
	ReturnUnit    ReturnKind = iota + 1 // 空载荷
	ReturnBytes                         // compact 长度前缀字节序列
	ReturnU8                            // 单字节
	ReturnBalance                       // u128 余额
)

// String 返回形态名
func (k ReturnKind) String() string {
	switch k {
	case ReturnUnit:
		return "()"
	case ReturnBytes:
		return "Vec<u8>"
	case ReturnU8:
		return "u8"
	case ReturnBalance:
		return "Balance"
	default:
		return "unknown"
	}
}

// Operation 扩展操作目录项
type Operation struct {
	Name     string
	Selector types.Selector
	Params   []Param
	Returns  ReturnKind
	Mutating bool

	// ErrorChannel 为 false 的操作在门面层没有错误通道（失败折叠为零）
	ErrorChannel bool

	// Failure 宿主侧该操作失败时报告的错误变体
	Failure Error
}

// ==================== 选择子 ====================
// 选择子是与宿主之间的永久契约，不得重新编号

const (
	SelectorTokenName         types.Selector = 0x3d26
	SelectorTokenSymbol       types.Selector = 0x3420
	SelectorTokenDecimals     types.Selector = 0x7271
	SelectorTotalSupply       types.Selector = 0x162d
	SelectorBalanceOf         types.Selector = 0x6568
	SelectorAllowance         types.Selector = 0x4d47
	SelectorTransfer          types.Selector = 0xdb20
	SelectorTransferFrom      types.Selector = 0x54b3
	SelectorApprove           types.Selector = 0xb20f
	SelectorIncreaseAllowance types.Selector = 0x96d6
	SelectorDecreaseAllowance types.Selector = 0xfecb
	SelectorMint              types.Selector = 0x6bba
	SelectorBurn              types.Selector = 0x9e55
)

var (
	argAsset   = Param{Name: "asset_id", Kind: ParamAsset}
	argOwner   = Param{Name: "owner", Kind: ParamAccount}
	argSpender = Param{Name: "spender", Kind: ParamAccount}
	argFrom    = Param{Name: "from", Kind: ParamAccount}
	argTo      = Param{Name: "to", Kind: ParamAccount}
	argValue   = Param{Name: "value", Kind: ParamBalance}
)

// ==================== 操作目录 ====================

var (
	OpTokenName = &Operation{
		Name: "token_name", Selector: SelectorTokenName,
		Params: []Param{argAsset}, Returns: ReturnBytes,
		ErrorChannel: true, Failure: ErrTokenNameFailed,
	}
	OpTokenSymbol = &Operation{
		Name: "token_symbol", Selector: SelectorTokenSymbol,
		Params: []Param{argAsset}, Returns: ReturnBytes,
		ErrorChannel: true, Failure: ErrTokenSymbolFailed,
	}
	OpTokenDecimals = &Operation{
		Name: "token_decimals", Selector: SelectorTokenDecimals,
		Params: []Param{argAsset}, Returns: ReturnU8,
		ErrorChannel: true, Failure: ErrTokenDecimalsFailed,
	}
	OpTotalSupply = &Operation{
		Name: "total_supply", Selector: SelectorTotalSupply,
		Params: []Param{argAsset}, Returns: ReturnBalance,
		Failure: ErrTotalSupplyFailed,
	}
	OpBalanceOf = &Operation{
		Name: "balance_of", Selector: SelectorBalanceOf,
		Params: []Param{argAsset, argOwner}, Returns: ReturnBalance,
		Failure: ErrBalanceOfFailed,
	}
	OpAllowance = &Operation{
		Name: "allowance", Selector: SelectorAllowance,
		Params: []Param{argAsset, argOwner, argSpender}, Returns: ReturnBalance,
		Failure: ErrAllowanceFailed,
	}
	OpTransfer = &Operation{
		Name: "transfer", Selector: SelectorTransfer,
		Params: []Param{argAsset, argTo, argValue}, Returns: ReturnUnit,
		Mutating: true, ErrorChannel: true, Failure: ErrTransferFailed,
	}
	OpTransferFrom = &Operation{
		Name: "transfer_from", Selector: SelectorTransferFrom,
		Params: []Param{argAsset, argFrom, argTo, argValue}, Returns: ReturnUnit,
		Mutating: true, ErrorChannel: true, Failure: ErrTransferFromFailed,
	}
	OpApprove = &Operation{
		Name: "approve", Selector: SelectorApprove,
		Params: []Param{argAsset, argSpender, argValue}, Returns: ReturnUnit,
		Mutating: true, ErrorChannel: true, Failure: ErrApproveFailed,
	}
	OpIncreaseAllowance = &Operation{
		Name: "increase_allowance", Selector: SelectorIncreaseAllowance,
		Params: []Param{argAsset, argSpender, argValue}, Returns: ReturnUnit,
		Mutating: true, ErrorChannel: true, Failure: ErrIncreaseAllowanceFailed,
	}
	OpDecreaseAllowance = &Operation{
		Name: "decrease_allowance", Selector: SelectorDecreaseAllowance,
		Params: []Param{argAsset, argSpender, argValue}, Returns: ReturnUnit,
		Mutating: true, ErrorChannel: true, Failure: ErrDecreaseAllowanceFailed,
	}
	// mint/burn 在错误目录中没有专属变体，宿主侧报告 TransferFailed
	OpMint = &Operation{
		Name: "mint", Selector: SelectorMint,
		Params: []Param{argAsset, argTo, argValue}, Returns: ReturnUnit,
		Mutating: true, ErrorChannel: true, Failure: ErrTransferFailed,
	}
	OpBurn = &Operation{
		Name: "burn", Selector: SelectorBurn,
		Params: []Param{argAsset, argFrom, argValue}, Returns: ReturnUnit,
		Mutating: true, ErrorChannel: true, Failure: ErrTransferFailed,
	}
)

var (
	catalogue = []*Operation{
		OpTokenName, OpTokenSymbol, OpTokenDecimals,
		OpTotalSupply, OpBalanceOf, OpAllowance,
		OpTransfer, OpTransferFrom, OpApprove,
		OpIncreaseAllowance, OpDecreaseAllowance,
		OpMint, OpBurn,
	}
	bySelector = make(map[types.Selector]*Operation, len(catalogue))
	byName     = make(map[string]*Operation, len(catalogue))
)

func init() {
	for _, op := range catalogue {
		if _, dup := bySelector[op.Selector]; dup {
			panic("extension: duplicate selector " + op.Selector.String())
		}
		if _, dup := byName[op.Name]; dup {
			panic("extension: duplicate operation " + op.Name)
		}
		bySelector[op.Selector] = op
		byName[op.Name] = op
	}
}

// Catalogue 返回全部操作（目录顺序）
func Catalogue() []*Operation {
	out := make([]*Operation, len(catalogue))
	copy(out, catalogue)
	return out
}

// OperationBySelector 按选择子查找操作
func OperationBySelector(selector types.Selector) (*Operation, bool) {
	op, ok := bySelector[selector]
	return op, ok
}

// OperationByName 按操作名查找
func OperationByName(name string) (*Operation, bool) {
	op, ok := byName[name]
	return op, ok
}

// Signature 返回可读签名，如 "balance_of(asset_id: AssetId, owner: AccountId) -> Balance"
func (op *Operation) Signature() string {
	s := op.Name + "("
	for i, p := range op.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Name + ": " + p.Kind.String()
	}
	return s + ") -> " + op.Returns.String()
}
