package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	extensionconfig "github.com/weisyn/assetbridge/internal/config/extension"
	journalconfig "github.com/weisyn/assetbridge/internal/config/journal"
	logconfig "github.com/weisyn/assetbridge/internal/config/log"
	"github.com/weisyn/assetbridge/pkg/interfaces/config"
	"github.com/weisyn/assetbridge/pkg/types"
)

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	return &Provider{
		appConfig: appConfig,
	}
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *logconfig.LogOptions {
	var userLogConfig *types.UserLogConfig
	if p.appConfig != nil {
		userLogConfig = p.appConfig.Log
	}
	return logconfig.New(userLogConfig).GetOptions()
}

// GetJournal 获取调用日志配置
//
// 未显式配置 journal.dir 时，数据目录跟随 data_dir。
func (p *Provider) GetJournal() *journalconfig.JournalOptions {
	var userJournalConfig *types.UserJournalConfig
	if p.appConfig != nil {
		userJournalConfig = p.appConfig.Journal
	}
	options := journalconfig.New(userJournalConfig).GetOptions()

	if p.appConfig != nil && p.appConfig.DataDir != nil &&
		(userJournalConfig == nil || userJournalConfig.Dir == nil) {
		options.Dir = filepath.Join(*p.appConfig.DataDir, "journal")
	}
	return options
}

// GetExtension 获取扩展调用配置
func (p *Provider) GetExtension() *extensionconfig.ExtensionOptions {
	var userExtensionConfig *types.UserExtensionConfig
	if p.appConfig != nil {
		userExtensionConfig = p.appConfig.Extension
	}
	return extensionconfig.New(userExtensionConfig).GetOptions()
}

// GetAppConfig 获取原始应用配置
func (p *Provider) GetAppConfig() *types.AppConfig {
	return p.appConfig
}

// LoadAppConfig 从JSON文件加载应用配置
//
// path 为空时返回空配置（全部使用默认值）。
func LoadAppConfig(path string) (*types.AppConfig, error) {
	if path == "" {
		return &types.AppConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败 %s: %w", path, err)
	}
	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置文件失败 %s: %w", path, err)
	}
	return &appConfig, nil
}

// staticAppOptions 以固定配置实现 AppOptions
type staticAppOptions struct {
	appConfig *types.AppConfig
}

// NewAppOptions 包装一份已加载的应用配置
func NewAppOptions(appConfig *types.AppConfig) config.AppOptions {
	return &staticAppOptions{appConfig: appConfig}
}

// GetAppConfig 实现 AppOptions
func (o *staticAppOptions) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
