package extension

import (
	"go.uber.org/fx"

	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// GateParams 调用门依赖
//
// HostCaller 以 "gate_host" 命名注入，便于在分发器外再包一层（录制、回放、状态覆盖）。
type GateParams struct {
	fx.In

	Host   ext.HostCaller `name:"gate_host"`
	Logger log.Logger     `optional:"true"`
}

// Module 返回扩展调用门模块
func Module() fx.Option {
	return fx.Module("extension",
		fx.Provide(func(p GateParams) *Gate {
			var logger log.Logger
			if p.Logger != nil {
				logger = p.Logger.With("module", "gate")
			}
			return NewGate(p.Host, logger)
		}),
	)
}
