package wasm

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/fx"

	extensionconfig "github.com/weisyn/assetbridge/internal/config/extension"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// ModuleInput WASM 绑定模块输入依赖
//
// Host 与调用门共用 "gate_host"：合约看到的宿主与进程内调用门看到的一致。
type ModuleInput struct {
	fx.In

	Host      ext.HostCaller                    `name:"gate_host"`
	Options   *extensionconfig.ExtensionOptions `optional:"true"`
	Logger    log.Logger                        `optional:"true"`
	Lifecycle fx.Lifecycle
}

// ModuleOutput WASM 绑定模块输出服务
type ModuleOutput struct {
	fx.Out

	Binding *Binding
	Runtime wazero.Runtime // 已注册 seal0 宿主模块的运行时
}

// Module 返回 WASM 绑定模块
func Module() fx.Option {
	return fx.Module("wasm",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 创建运行时并注册宿主函数，停止时关闭运行时
//
// TinyGo 编译的合约依赖 WASI，必须在合约实例化之前注册 wasi_snapshot_preview1。
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "wasm")
	}

	ctx := context.Background()
	binding := NewBinding(input.Host, input.Options, logger)
	runtime := wazero.NewRuntime(ctx)
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, runtime); err != nil {
		_ = runtime.Close(ctx)
		return ModuleOutput{}, fmt.Errorf("WASI模块实例化失败: %w", err)
	}
	if _, err := binding.Instantiate(ctx, runtime); err != nil {
		_ = runtime.Close(ctx)
		return ModuleOutput{}, err
	}

	input.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return runtime.Close(ctx)
		},
	})
	return ModuleOutput{Binding: binding, Runtime: runtime}, nil
}

// Options 绑定使用的扩展配置
func (b *Binding) Options() extensionconfig.ExtensionOptions {
	return *b.options
}
