package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/internal/core/facade"
	"github.com/weisyn/assetbridge/internal/core/journal"
	"github.com/weisyn/assetbridge/internal/core/scenario"
)

var replayOffset int

// replayCmd 按调用日志回放场景
var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml>",
	Short: "按调用日志回放场景",
	Long: `以调用日志中记录的宿主应答代替账本，重新执行场景步骤

每次调用的选择子与输入必须与记录一致，否则该步骤以 HostDiverged 中止。
场景中的状态覆盖在回放时同样生效（被覆盖的调用不会写入日志）。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		records, err := loadJournal(cmd.Context())
		if err != nil {
			return err
		}
		if replayOffset < 0 || replayOffset > len(records) {
			return fmt.Errorf("--offset %d 超出调用日志范围 (共 %d 条)", replayOffset, len(records))
		}

		host := journal.NewReplayHost(records[replayOffset:])
		f := facade.New(s.AssetID, extension.NewGate(scenario.NewRawOverrideHost(host, s), nil), nil)
		results := scenario.Run(cmd.Context(), s, f)

		failed := printResults(s, results)
		if n := host.Remaining(); n > 0 {
			pterm.Warning.Printfln("调用日志中还有 %d 条记录未回放", n)
		}
		if failed > 0 {
			return fmt.Errorf("回放 %s: %d 个步骤未满足期望", s.Name, failed)
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().IntVar(&replayOffset, "offset", 0, "跳过调用日志开头的记录数")
}
