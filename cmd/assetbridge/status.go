package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

// statusCmd 解码状态码
var statusCmd = &cobra.Command{
	Use:   "status <code>",
	Short: "解码宿主状态码",
	Long: `按全局错误目录解码宿主返回的 u32 状态码

  0        成功
  1..11    错误目录中的变体
  其他     协议违例（调用方会中止）`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("无效的状态码 %q: %w", args[0], err)
		}
		code := types.StatusCode(n)

		if code.IsSuccess() {
			pterm.Success.Printfln("%d: Success", code)
			return nil
		}
		if e, ok := extension.LookupStatus(code); ok {
			pterm.Warning.Printfln("%d: %s", code, e.Name())
			return nil
		}
		v := &extension.ProtocolViolation{Kind: extension.UnknownStatus, Status: code}
		pterm.Error.Printfln("%d: %v", code, v)
		return nil
	},
}
