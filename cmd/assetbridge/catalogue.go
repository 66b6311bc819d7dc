package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/internal/core/extension"
)

// catalogueCmd 列出扩展操作目录
var catalogueCmd = &cobra.Command{
	Use:     "catalogue",
	Aliases: []string{"catalog", "ops"},
	Short:   "列出扩展操作目录",
	Long:    "列出全部扩展操作的选择子、参数元组、返回类型与失败时的错误变体",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data := pterm.TableData{
			{"选择子", "操作", "参数", "返回", "变更", "失败变体"},
		}
		for _, op := range extension.Catalogue() {
			params := make([]string, 0, len(op.Params))
			for _, p := range op.Params {
				params = append(params, p.Name+": "+p.Kind.String())
			}

			mutating := ""
			if op.Mutating {
				mutating = "✓"
			}
			failure := "-"
			if op.ErrorChannel {
				failure = op.Failure.Name()
			}

			data = append(data, []string{
				op.Selector.String(),
				op.Name,
				"(" + strings.Join(params, ", ") + ")",
				op.Returns.String(),
				mutating,
				failure,
			})
		}
		return pterm.DefaultTable.WithHasHeader(true).WithData(data).Render()
	},
}
