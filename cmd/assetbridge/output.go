package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/weisyn/assetbridge/internal/core/hostext"
	"github.com/weisyn/assetbridge/internal/core/scenario"
)

// printResults 以表格输出场景步骤结果，返回未满足期望的步骤数
func printResults(s *scenario.Scenario, results []scenario.StepResult) int {
	pterm.DefaultSection.Printfln("场景 %s (asset %s)", s.Name, s.AssetID)

	data := pterm.TableData{{"#", "操作", "参数", "结果", "检查"}}
	for _, r := range results {
		check := ""
		if r.Checked {
			if r.Passed {
				check = pterm.Green("通过")
			} else {
				check = pterm.Red("失败: " + r.Mismatch)
			}
		}
		data = append(data, []string{
			fmt.Sprint(r.Index),
			r.Op,
			strings.Join(r.Args, " "),
			r.Outcome(),
			check,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader(true).WithData(data).Render()

	failed := scenario.Failed(results)
	if failed == 0 {
		pterm.Success.Printfln("%d 个步骤执行完成", len(results))
	} else {
		pterm.Error.Printfln("%d 个步骤未满足期望", failed)
	}
	return failed
}

// printMutations 输出账本收到的变更请求
func printMutations(mutations []scenario.Mutation) {
	if len(mutations) == 0 {
		pterm.Info.Println("账本未收到变更请求")
		return
	}
	data := pterm.TableData{{"#", "操作", "资产", "发起者", "参数"}}
	for i, m := range mutations {
		data = append(data, []string{
			fmt.Sprint(i),
			m.Op,
			m.Asset.String(),
			m.Origin.String(),
			fmt.Sprint(m.Args...),
		})
	}
	pterm.DefaultSection.Println("账本变更")
	_ = pterm.DefaultTable.WithHasHeader(true).WithData(data).Render()
}

// printCallStats 输出本进程的扩展调用计数
func printCallStats() {
	stats, err := hostext.CallStats()
	if err != nil {
		pterm.Warning.Printfln("读取调用指标失败: %v", err)
		return
	}
	if len(stats) == 0 {
		return
	}

	data := pterm.TableData{{"操作", "状态", "次数"}}
	for _, st := range stats {
		data = append(data, []string{st.Operation, st.Status, fmt.Sprintf("%.0f", st.Count)})
	}
	pterm.DefaultSection.Println("调用统计")
	_ = pterm.DefaultTable.WithHasHeader(true).WithData(data).Render()
}
