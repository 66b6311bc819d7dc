// Package scenario 提供基于 YAML 的扩展调用场景
//
// 场景描述一个绑定资产的门面、宿主账本的脚本化应答、按操作注入的原始状态码，
// 以及依次执行的步骤。用于 CLI 的 simulate / replay 命令与端到端测试。
//
// 示例：
//
//	name: transfer-rejected
//	asset_id: 7
//	caller: contract
//	accounts:
//	  contract: "0x00000000000000000000000000000000000000000000000000000000000000c0"
//	  alice: "0x00000000000000000000000000000000000000000000000000000000000000a1"
//	ledger:
//	  balances:
//	    - {owner: alice, value: "500"}
//	  fail: [transfer]
//	overrides:
//	  mint: 42
//	steps:
//	  - op: balance_of
//	    args: [alice]
//	    expect: {result: "500"}
//	  - op: transfer
//	    args: [alice, "1000"]
//	    expect: {error: TransferFailed}
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

// Scenario 场景文件
type Scenario struct {
	Name      string                      `yaml:"name"`
	AssetID   types.AssetID               `yaml:"asset_id"`
	Caller    string                      `yaml:"caller"`
	Accounts  map[string]string           `yaml:"accounts"`
	Ledger    LedgerScript                `yaml:"ledger"`
	Overrides map[string]types.StatusCode `yaml:"overrides"`
	Steps     []Step                      `yaml:"steps"`

	accounts map[string]types.AccountID
}

// LedgerScript 脚本化账本的应答
type LedgerScript struct {
	Name        string           `yaml:"name"`
	Symbol      string           `yaml:"symbol"`
	Decimals    uint8            `yaml:"decimals"`
	TotalSupply string           `yaml:"total_supply"`
	Balances    []BalanceEntry   `yaml:"balances"`
	Allowances  []AllowanceEntry `yaml:"allowances"`
	// Fail 中列出的操作由账本拒绝
	Fail []string `yaml:"fail"`
}

// BalanceEntry 账户余额
type BalanceEntry struct {
	Owner string `yaml:"owner"`
	Value string `yaml:"value"`
}

// AllowanceEntry 授权额度
type AllowanceEntry struct {
	Owner   string `yaml:"owner"`
	Spender string `yaml:"spender"`
	Value   string `yaml:"value"`
}

// Step 单个步骤：操作名与资产ID之后的参数
type Step struct {
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Expect *Expect  `yaml:"expect,omitempty"`
}

// Expect 步骤期望；三项互斥
type Expect struct {
	Result string `yaml:"result,omitempty"` // 成功结果的文本形式
	Error  string `yaml:"error,omitempty"`  // 错误变体名
	Abort  bool   `yaml:"abort,omitempty"`  // 期望协议违例
}

// Load 读取并校验场景文件
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取场景文件失败: %w", err)
	}
	return Parse(data)
}

// Parse 解析并校验场景
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("解析场景失败: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("场景 %q 无效: %w", s.Name, err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	s.accounts = make(map[string]types.AccountID, len(s.Accounts))
	for name, text := range s.Accounts {
		id, err := types.ParseAccountID(text)
		if err != nil {
			return fmt.Errorf("账户 %s: %w", name, err)
		}
		s.accounts[name] = id
	}

	if s.Caller != "" {
		if _, err := s.Account(s.Caller); err != nil {
			return fmt.Errorf("caller: %w", err)
		}
	}
	if s.Ledger.TotalSupply != "" {
		if _, err := types.ParseBalance(s.Ledger.TotalSupply); err != nil {
			return fmt.Errorf("total_supply: %w", err)
		}
	}
	for i, b := range s.Ledger.Balances {
		if _, err := s.Account(b.Owner); err != nil {
			return fmt.Errorf("balances[%d]: %w", i, err)
		}
		if _, err := types.ParseBalance(b.Value); err != nil {
			return fmt.Errorf("balances[%d]: %w", i, err)
		}
	}
	for i, a := range s.Ledger.Allowances {
		if _, err := s.Account(a.Owner); err != nil {
			return fmt.Errorf("allowances[%d]: %w", i, err)
		}
		if _, err := s.Account(a.Spender); err != nil {
			return fmt.Errorf("allowances[%d]: %w", i, err)
		}
		if _, err := types.ParseBalance(a.Value); err != nil {
			return fmt.Errorf("allowances[%d]: %w", i, err)
		}
	}
	for _, name := range s.Ledger.Fail {
		if _, ok := extension.OperationByName(name); !ok {
			return fmt.Errorf("fail: 未知操作 %s", name)
		}
	}
	for name := range s.Overrides {
		if _, ok := extension.OperationByName(name); !ok {
			return fmt.Errorf("overrides: 未知操作 %s", name)
		}
	}
	for i, step := range s.Steps {
		if _, err := s.stepArgs(step); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	return nil
}

// Account 按名称或文本形式（0x 十六进制 / base58）解析账户
func (s *Scenario) Account(ref string) (types.AccountID, error) {
	if id, ok := s.accounts[ref]; ok {
		return id, nil
	}
	return types.ParseAccountID(ref)
}

// CallerID 发起调用的合约账户，未配置时为零账户
func (s *Scenario) CallerID() types.AccountID {
	id, _ := s.Account(s.Caller)
	return id
}

// stepArgs 按目录参数元组（跳过资产ID）解析步骤参数
func (s *Scenario) stepArgs(step Step) ([]any, error) {
	op, ok := extension.OperationByName(step.Op)
	if !ok {
		return nil, fmt.Errorf("未知操作 %s", step.Op)
	}
	params := op.Params[1:]
	if len(step.Args) != len(params) {
		return nil, fmt.Errorf("%s 需要 %d 个参数，实际 %d", op.Name, len(params), len(step.Args))
	}

	args := make([]any, 0, len(params))
	for i, p := range params {
		switch p.Kind {
		case extension.ParamAccount:
			id, err := s.Account(step.Args[i])
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", op.Name, p.Name, err)
			}
			args = append(args, id)
		case extension.ParamBalance:
			v, err := types.ParseBalance(step.Args[i])
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", op.Name, p.Name, err)
			}
			args = append(args, v)
		default:
			return nil, fmt.Errorf("%s.%s: 不支持的参数类型 %s", op.Name, p.Name, p.Kind)
		}
	}
	return args, nil
}
