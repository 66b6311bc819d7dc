package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/weisyn/assetbridge/internal/config"
	"github.com/weisyn/assetbridge/internal/core/extension"
	"github.com/weisyn/assetbridge/internal/core/hostext"
	"github.com/weisyn/assetbridge/internal/core/infrastructure/clock"
	"github.com/weisyn/assetbridge/internal/core/infrastructure/event"
	"github.com/weisyn/assetbridge/internal/core/infrastructure/log"
	"github.com/weisyn/assetbridge/internal/core/journal"
	"github.com/weisyn/assetbridge/internal/core/scenario"
	configiface "github.com/weisyn/assetbridge/pkg/interfaces/config"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

// infraModules 基础设施：配置、日志、事件、时钟
func infraModules(appConfig *types.AppConfig) fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(func() configiface.AppOptions { return config.NewAppOptions(appConfig) }),
		config.Module(),
		log.Module(),
		event.Module(),
		clock.Module(),
	)
}

// bridgeModules 场景账本 -> 分发器 -> 状态覆盖(gate_host) -> 调用门，并录制调用日志
func bridgeModules(s *scenario.Scenario, ledger ext.Ledger) fx.Option {
	return fx.Options(
		fx.Provide(func() ext.Ledger { return ledger }),
		hostext.Module(),
		fx.Provide(fx.Annotate(
			func(inner ext.HostCaller) ext.HostCaller {
				return scenario.NewRawOverrideHost(inner, s)
			},
			fx.ParamTags(`name:"dispatcher"`),
			fx.ResultTags(`name:"gate_host"`),
		)),
		extension.Module(),
		journal.Module(),
	)
}

// runApp 启动应用、执行 fn、停止应用
//
// 停止总会执行：日志模块在停止时等待异步订阅者写完并关闭存储。
func runApp(ctx context.Context, app *fx.App, fn func(ctx context.Context) error) error {
	if err := app.Err(); err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("启动失败: %w", err)
	}

	runErr := fn(ctx)

	if err := app.Stop(ctx); err != nil {
		return fmt.Errorf("停止失败: %w", err)
	}
	return runErr
}
