package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/internal/config"
	"github.com/weisyn/assetbridge/pkg/types"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigPath string // JSON 配置文件
	JournalDir string // 调用日志目录（覆盖配置）
	InMemory   bool   // 调用日志使用内存模式
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "assetbridge",
	Short: "PSP22 资产链扩展桥",
	Long: `assetbridge - 合约与宿主资产账本之间的链扩展调用桥

提供的能力:
- 查看 13 个扩展操作的选择子、参数与错误通道
- 解码宿主返回的状态码
- 以 YAML 场景驱动 门面 -> 调用门 -> 分发器 -> 账本 的完整调用链
- 记录扩展调用并按记录回放
- 在 wazero 中运行合约 WASM，经 seal0 宿主函数访问账本`,
	SilenceUsage: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "JSON 配置文件路径 (默认使用内置配置)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.JournalDir, "journal-dir", "", "调用日志目录 (覆盖配置中的 journal.dir)")

	// 添加子命令
	rootCmd.AddCommand(catalogueCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(guestCmd)
}

// loadAppConfig 加载配置文件并叠加命令行覆盖
func loadAppConfig() (*types.AppConfig, error) {
	appConfig, err := config.LoadAppConfig(globalFlags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if globalFlags.JournalDir != "" || globalFlags.InMemory {
		if appConfig.Journal == nil {
			appConfig.Journal = &types.UserJournalConfig{}
		}
		appConfig.Journal.Enabled = types.BoolPtr(true)
		if globalFlags.JournalDir != "" {
			appConfig.Journal.Dir = types.StringPtr(globalFlags.JournalDir)
		}
		if globalFlags.InMemory {
			appConfig.Journal.InMemory = types.BoolPtr(true)
		}
	}
	return appConfig, nil
}
