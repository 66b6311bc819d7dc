package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/internal/core/journal"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

// errJournalDisabled 配置中未启用调用日志
var errJournalDisabled = errors.New("调用日志未启用 (使用 --journal-dir 或配置 journal.enabled)")

// journalCmd 列出调用日志
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "列出调用日志",
	Long:  "按写入顺序列出调用日志中的扩展调用记录",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadJournal(cmd.Context())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			pterm.Info.Println("调用日志为空")
			return nil
		}

		data := pterm.TableData{{"#", "ID", "操作", "资产", "状态", "输入", "输出", "耗时"}}
		for i, r := range records {
			status := "Success"
			if e, ok := extension.LookupStatus(r.Status); ok {
				status = e.Name()
			} else if !r.Status.IsSuccess() {
				status = fmt.Sprintf("%d", r.Status)
			}
			data = append(data, []string{
				fmt.Sprint(i),
				r.ID,
				r.Operation,
				r.AssetID.String(),
				status,
				hex.EncodeToString(r.Input),
				hex.EncodeToString(r.Output),
				r.Duration.String(),
			})
		}
		return pterm.DefaultTable.WithHasHeader(true).WithData(data).Render()
	},
}

// loadJournal 从应用图中取得磁盘上的调用日志并读出全部记录
func loadJournal(ctx context.Context) ([]*types.CallRecord, error) {
	appConfig, err := loadAppConfig()
	if err != nil {
		return nil, err
	}
	// 内存模式的日志在进程退出后已不存在
	if appConfig.Journal != nil {
		appConfig.Journal.InMemory = types.BoolPtr(false)
	}

	var store ext.Journal
	app := fx.New(
		infraModules(appConfig),
		journal.Module(),
		fx.Populate(&store),
	)

	var records []*types.CallRecord
	err = runApp(ctx, app, func(ctx context.Context) error {
		if store == nil {
			return errJournalDisabled
		}
		records, err = store.List(ctx)
		return err
	})
	return records, err
}
