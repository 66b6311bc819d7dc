package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tetratelabs/wazero"
	"go.uber.org/fx"

	"github.com/weisyn/assetbridge/internal/core/hostext"
	"github.com/weisyn/assetbridge/internal/core/hostext/wasm"
	"github.com/weisyn/assetbridge/internal/core/scenario"
)

var (
	guestExport string
	guestArgs   []uint
)

// guestCmd 在场景账本上运行合约 WASM
var guestCmd = &cobra.Command{
	Use:   "guest <scenario.yaml> <contract.wasm>",
	Short: "在场景账本上运行合约 WASM",
	Long: `实例化合约 WASM 并调用其导出函数，合约经 seal0.seal_call_chain_extension 访问场景账本

func_id 高16位必须等于配置中的 extension.extension_id，输入输出受 max_input_len / max_output_len 限制；
违反时合约陷入。调用者账户取场景中的 caller，状态覆盖与调用日志同 simulate。`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		code, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("读取合约失败: %w", err)
		}
		appConfig, err := loadAppConfig()
		if err != nil {
			return err
		}
		ledger, err := scenario.NewScriptedLedger(s)
		if err != nil {
			return err
		}

		var (
			runtime wazero.Runtime
			binding *wasm.Binding
		)
		app := fx.New(
			infraModules(appConfig),
			bridgeModules(s, ledger),
			wasm.Module(),
			fx.Populate(&runtime, &binding),
		)

		var results []uint64
		err = runApp(cmd.Context(), app, func(ctx context.Context) error {
			params := make([]uint64, len(guestArgs))
			for i, a := range guestArgs {
				params[i] = uint64(a)
			}
			results, err = callGuest(hostext.WithCaller(ctx, s.CallerID()), runtime, code, guestExport, params)
			return err
		})
		if err != nil {
			return err
		}

		options := binding.Options()
		pterm.Success.Printfln("%s 返回 %v (extension_id=%d)", guestExport, results, options.ExtensionID)
		printMutations(ledger.Mutations())
		printCallStats()
		return nil
	},
}

// callGuest 实例化合约并调用导出函数
func callGuest(ctx context.Context, r wazero.Runtime, code []byte, export string, params []uint64) ([]uint64, error) {
	compiled, err := r.CompileModule(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("编译合约失败: %w", err)
	}
	defer compiled.Close(ctx)

	// 不自动执行 _start，由 --export 指定入口
	mod, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithStartFunctions())
	if err != nil {
		return nil, fmt.Errorf("实例化合约失败: %w", err)
	}
	defer mod.Close(ctx)

	fn := mod.ExportedFunction(export)
	if fn == nil {
		return nil, fmt.Errorf("合约未导出函数 %s", export)
	}
	results, err := fn.Call(ctx, params...)
	if err != nil {
		return nil, fmt.Errorf("调用 %s 失败: %w", export, err)
	}
	return results, nil
}

func init() {
	guestCmd.Flags().StringVar(&guestExport, "export", "call", "调用的导出函数")
	guestCmd.Flags().UintSliceVar(&guestArgs, "arg", nil, "导出函数的参数（可重复，按 i32/i64 传入）")
	guestCmd.Flags().BoolVar(&globalFlags.InMemory, "in-memory", false, "调用日志使用内存模式（不落盘）")
}
