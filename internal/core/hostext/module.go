package hostext

import (
	"go.uber.org/fx"

	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// ModuleInput 宿主扩展模块输入依赖
type ModuleInput struct {
	fx.In

	Ledger   ext.Ledger     // 宿主账本（由调用方提供）
	EventBus event.EventBus `optional:"true"`
	Logger   log.Logger     `optional:"true"`
	Clock    clock.Clock    `optional:"true"`
}

// ModuleOutput 宿主扩展模块输出服务
type ModuleOutput struct {
	fx.Out

	Dispatcher *Dispatcher
	HostCaller ext.HostCaller `name:"dispatcher"`
}

// Module 返回宿主扩展模块
func Module() fx.Option {
	return fx.Module("hostext",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 创建分发器
func ProvideServices(input ModuleInput) ModuleOutput {
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "hostext")
	}
	d := NewDispatcher(input.Ledger, input.EventBus, logger, WithClock(input.Clock))
	return ModuleOutput{
		Dispatcher: d,
		HostCaller: d,
	}
}
