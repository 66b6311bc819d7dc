package journal

import (
	"context"

	"go.uber.org/fx"

	journalconfig "github.com/weisyn/assetbridge/internal/config/journal"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// ModuleInput 调用日志模块输入依赖
type ModuleInput struct {
	fx.In

	Options   *journalconfig.JournalOptions
	EventBus  event.EventBus
	Logger    log.Logger `optional:"true"`
	Lifecycle fx.Lifecycle
}

// ModuleOutput 调用日志模块输出服务
//
// 调用日志未启用时两者均为 nil。
type ModuleOutput struct {
	fx.Out

	Store    *Store
	Recorder *Recorder
}

// Module 返回调用日志模块
func Module() fx.Option {
	return fx.Module("journal",
		fx.Provide(ProvideServices),
		fx.Provide(func(s *Store) ext.Journal {
			if s == nil {
				return nil
			}
			return s
		}),
	)
}

// ProvideServices 打开存储并启动录制
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	config := journalconfig.NewFromOptions(input.Options)

	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "journal")
	}
	if !config.IsEnabled() {
		if logger != nil {
			logger.Info("调用日志未启用")
		}
		return ModuleOutput{}, nil
	}

	store, err := Open(config, logger)
	if err != nil {
		return ModuleOutput{}, err
	}
	recorder, err := NewRecorder(store, input.EventBus, logger)
	if err != nil {
		_ = store.Close()
		return ModuleOutput{}, err
	}

	input.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			input.EventBus.WaitAsync()
			if err := recorder.Stop(); err != nil && logger != nil {
				logger.Warnf("取消调用日志订阅失败: %v", err)
			}
			return store.Close()
		},
	})

	return ModuleOutput{Store: store, Recorder: recorder}, nil
}
