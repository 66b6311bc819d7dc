package scenario

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/internal/core/hostext"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

// StepResult 单个步骤的执行结果
type StepResult struct {
	Index  int
	Op     string
	Args   []string
	Result string // 成功结果的文本形式

	Err       error                        // 错误目录中的变体
	Violation *extension.ProtocolViolation // 协议违例（调用被中止）

	Checked  bool   // 步骤带有期望
	Passed   bool   // 期望是否满足
	Mismatch string // 不满足时的说明
}

// Outcome 结果摘要
func (r StepResult) Outcome() string {
	switch {
	case r.Violation != nil:
		return "ABORT " + r.Violation.Kind.String()
	case r.Err != nil:
		var e extension.Error
		if errors.As(r.Err, &e) {
			return "ERR " + e.Name()
		}
		return "ERR " + r.Err.Error()
	default:
		return "OK " + r.Result
	}
}

// Run 通过门面依次执行场景步骤
//
// 每个步骤独立恢复协议违例：一个步骤被中止不影响后续步骤。
func Run(ctx context.Context, s *Scenario, f ext.PSP22) []StepResult {
	ctx = hostext.WithCaller(ctx, s.CallerID())

	results := make([]StepResult, 0, len(s.Steps))
	for i, step := range s.Steps {
		r := StepResult{Index: i, Op: step.Op, Args: step.Args}

		args, err := s.stepArgs(step)
		if err != nil {
			// Parse 已校验，这里只会在手工构造的场景中出现
			r.Err = err
		} else {
			r.Result, err = execute(ctx, f, step.Op, args)
			if v, ok := extension.AsProtocolViolation(err); ok {
				r.Violation = v
			} else {
				r.Err = err
			}
		}

		if step.Expect != nil {
			r.Checked = true
			r.Passed, r.Mismatch = check(step.Expect, r)
		}
		results = append(results, r)
	}
	return results
}

// Failed 未满足期望的步骤数
func Failed(results []StepResult) int {
	n := 0
	for _, r := range results {
		if r.Checked && !r.Passed {
			n++
		}
	}
	return n
}

func check(expect *Expect, r StepResult) (bool, string) {
	switch {
	case expect.Abort:
		if r.Violation == nil {
			return false, "期望中止，实际 " + r.Outcome()
		}
	case expect.Error != "":
		var e extension.Error
		if r.Violation != nil || !errors.As(r.Err, &e) || e.Name() != expect.Error {
			return false, fmt.Sprintf("期望错误 %s，实际 %s", expect.Error, r.Outcome())
		}
	default:
		if r.Violation != nil || r.Err != nil {
			return false, "期望成功，实际 " + r.Outcome()
		}
		if expect.Result != "" && expect.Result != r.Result {
			return false, fmt.Sprintf("期望结果 %s，实际 %s", expect.Result, r.Result)
		}
	}
	return true, ""
}

// execute 调用门面方法，协议违例在此恢复为 error
func execute(ctx context.Context, f ext.PSP22, op string, args []any) (result string, err error) {
	defer extension.Recover(&err)

	account := func(i int) types.AccountID { return args[i].(types.AccountID) }
	balance := func(i int) types.Balance { return args[i].(types.Balance) }

	switch op {
	case "token_name":
		b, err := f.TokenName(ctx)
		return string(b), err
	case "token_symbol":
		b, err := f.TokenSymbol(ctx)
		return string(b), err
	case "token_decimals":
		d, err := f.TokenDecimals(ctx)
		return strconv.Itoa(int(d)), err
	case "total_supply":
		return f.TotalSupply(ctx).String(), nil
	case "balance_of":
		return f.BalanceOf(ctx, account(0)).String(), nil
	case "allowance":
		return f.Allowance(ctx, account(0), account(1)).String(), nil
	case "transfer":
		return "", f.Transfer(ctx, account(0), balance(1))
	case "transfer_from":
		return "", f.TransferFrom(ctx, account(0), account(1), balance(2))
	case "approve":
		return "", f.Approve(ctx, account(0), balance(1))
	case "increase_allowance":
		return "", f.IncreaseAllowance(ctx, account(0), balance(1))
	case "decrease_allowance":
		return "", f.DecreaseAllowance(ctx, account(0), balance(1))
	case "mint":
		return "", f.Mint(ctx, account(0), balance(1))
	case "burn":
		return "", f.Burn(ctx, account(0), balance(1))
	}
	return "", fmt.Errorf("未知操作 %s", op)
}
