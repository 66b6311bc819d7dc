package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/internal/core/facade"
	"github.com/weisyn/assetbridge/internal/core/infrastructure/log"
	"github.com/weisyn/assetbridge/internal/core/journal"
	"github.com/weisyn/assetbridge/internal/core/scenario"
	logiface "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// simulateCmd 运行调用场景
var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "运行调用场景",
	Long: `以场景文件中的脚本化账本为宿主，依次执行场景步骤

调用链: 门面 -> 调用门 -> (状态覆盖) -> 分发器 -> 账本
启用调用日志时，分发器发布的每条调用记录都会写入 BadgerDB，供 replay 使用。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
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
			gate     *extension.Gate
			recorder *journal.Recorder
			logger   logiface.Logger
		)
		app := fx.New(
			infraModules(appConfig),
			bridgeModules(s, ledger),
			fx.Populate(&gate, &recorder, &logger),
		)

		var results []scenario.StepResult
		err = runApp(cmd.Context(), app, func(ctx context.Context) error {
			f := facade.New(s.AssetID, gate, log.NewModuleLogger(logger, "facade"))
			results = scenario.Run(ctx, s, f)
			return nil
		})
		if err != nil {
			return err
		}
		_ = logger.Sync()

		failed := printResults(s, results)
		printCallStats()
		if recorder != nil {
			pterm.Info.Printfln("调用日志: 写入 %d 条，失败 %d 条", recorder.Recorded(), recorder.Failed())
		}
		if failed > 0 {
			return fmt.Errorf("场景 %s: %d 个步骤未满足期望", s.Name, failed)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().BoolVar(&globalFlags.InMemory, "in-memory", false, "调用日志使用内存模式（不落盘）")
}
