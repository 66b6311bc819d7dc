package scenario

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

// ErrScriptedFailure 账本脚本拒绝该操作
var ErrScriptedFailure = errors.New("scripted ledger failure")

// Mutation 账本收到的一次变更请求
type Mutation struct {
	Op     string
	Asset  types.AssetID
	Origin types.AccountID
	Args   []any
}

// ScriptedLedger 按脚本应答的宿主账本
//
// 查询返回脚本中的固定值；变更请求只被记录，不会改变任何余额。
// 被拒绝的变更不会出现在 Mutations 中。
type ScriptedLedger struct {
	name        []byte
	symbol      []byte
	decimals    uint8
	totalSupply types.Balance
	balances    map[types.AccountID]types.Balance
	allowances  map[[2]types.AccountID]types.Balance
	fail        map[string]bool

	mu        sync.Mutex
	mutations []Mutation
}

var _ ext.Ledger = (*ScriptedLedger)(nil)

// NewScriptedLedger 从场景构建账本
func NewScriptedLedger(s *Scenario) (*ScriptedLedger, error) {
	l := &ScriptedLedger{
		name:       []byte(s.Ledger.Name),
		symbol:     []byte(s.Ledger.Symbol),
		decimals:   s.Ledger.Decimals,
		balances:   make(map[types.AccountID]types.Balance),
		allowances: make(map[[2]types.AccountID]types.Balance),
		fail:       make(map[string]bool),
	}

	if s.Ledger.TotalSupply != "" {
		v, err := types.ParseBalance(s.Ledger.TotalSupply)
		if err != nil {
			return nil, fmt.Errorf("total_supply: %w", err)
		}
		l.totalSupply = v
	}
	for _, b := range s.Ledger.Balances {
		owner, err := s.Account(b.Owner)
		if err != nil {
			return nil, err
		}
		v, err := types.ParseBalance(b.Value)
		if err != nil {
			return nil, err
		}
		l.balances[owner] = v
	}
	for _, a := range s.Ledger.Allowances {
		owner, err := s.Account(a.Owner)
		if err != nil {
			return nil, err
		}
		spender, err := s.Account(a.Spender)
		if err != nil {
			return nil, err
		}
		v, err := types.ParseBalance(a.Value)
		if err != nil {
			return nil, err
		}
		l.allowances[[2]types.AccountID{owner, spender}] = v
	}
	for _, op := range s.Ledger.Fail {
		l.fail[op] = true
	}
	return l, nil
}

// Mutations 已接受的变更请求（按到达顺序）
func (l *ScriptedLedger) Mutations() []Mutation {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Mutation, len(l.mutations))
	copy(out, l.mutations)
	return out
}

func (l *ScriptedLedger) check(op string) error {
	if l.fail[op] {
		return fmt.Errorf("%s: %w", op, ErrScriptedFailure)
	}
	return nil
}

func (l *ScriptedLedger) mutate(op string, asset types.AssetID, origin types.AccountID, args ...any) error {
	if err := l.check(op); err != nil {
		return err
	}
	l.mu.Lock()
	l.mutations = append(l.mutations, Mutation{Op: op, Asset: asset, Origin: origin, Args: args})
	l.mu.Unlock()
	return nil
}

// ==================== 查询 ====================

func (l *ScriptedLedger) TokenName(context.Context, types.AssetID) ([]byte, error) {
	if err := l.check("token_name"); err != nil {
		return nil, err
	}
	return l.name, nil
}

func (l *ScriptedLedger) TokenSymbol(context.Context, types.AssetID) ([]byte, error) {
	if err := l.check("token_symbol"); err != nil {
		return nil, err
	}
	return l.symbol, nil
}

func (l *ScriptedLedger) TokenDecimals(context.Context, types.AssetID) (uint8, error) {
	if err := l.check("token_decimals"); err != nil {
		return 0, err
	}
	return l.decimals, nil
}

func (l *ScriptedLedger) TotalSupply(context.Context, types.AssetID) (types.Balance, error) {
	if err := l.check("total_supply"); err != nil {
		return types.Balance{}, err
	}
	return l.totalSupply, nil
}

func (l *ScriptedLedger) BalanceOf(_ context.Context, _ types.AssetID, owner types.AccountID) (types.Balance, error) {
	if err := l.check("balance_of"); err != nil {
		return types.Balance{}, err
	}
	return l.balances[owner], nil
}

func (l *ScriptedLedger) Allowance(_ context.Context, _ types.AssetID, owner, spender types.AccountID) (types.Balance, error) {
	if err := l.check("allowance"); err != nil {
		return types.Balance{}, err
	}
	return l.allowances[[2]types.AccountID{owner, spender}], nil
}

// ==================== 变更 ====================

func (l *ScriptedLedger) Transfer(_ context.Context, asset types.AssetID, origin, to types.AccountID, value types.Balance) error {
	return l.mutate("transfer", asset, origin, to, value)
}

func (l *ScriptedLedger) TransferFrom(_ context.Context, asset types.AssetID, origin, from, to types.AccountID, value types.Balance) error {
	return l.mutate("transfer_from", asset, origin, from, to, value)
}

func (l *ScriptedLedger) Approve(_ context.Context, asset types.AssetID, origin, spender types.AccountID, value types.Balance) error {
	return l.mutate("approve", asset, origin, spender, value)
}

func (l *ScriptedLedger) IncreaseAllowance(_ context.Context, asset types.AssetID, origin, spender types.AccountID, value types.Balance) error {
	return l.mutate("increase_allowance", asset, origin, spender, value)
}

func (l *ScriptedLedger) DecreaseAllowance(_ context.Context, asset types.AssetID, origin, spender types.AccountID, value types.Balance) error {
	return l.mutate("decrease_allowance", asset, origin, spender, value)
}

func (l *ScriptedLedger) Mint(_ context.Context, asset types.AssetID, origin, to types.AccountID, value types.Balance) error {
	return l.mutate("mint", asset, origin, to, value)
}

func (l *ScriptedLedger) Burn(_ context.Context, asset types.AssetID, origin, from types.AccountID, value types.Balance) error {
	return l.mutate("burn", asset, origin, from, value)
}
