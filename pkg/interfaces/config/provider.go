// Package config provides configuration provider interfaces.
package config

import (
	extensionconfig "github.com/weisyn/assetbridge/internal/config/extension"
	journalconfig "github.com/weisyn/assetbridge/internal/config/journal"
	logconfig "github.com/weisyn/assetbridge/internal/config/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

// AppOptions 应用配置选项接口
type AppOptions interface {
	// GetAppConfig 获取应用配置
	GetAppConfig() *types.AppConfig
}

// Provider 配置提供者接口
type Provider interface {
	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetJournal 获取调用日志配置
	GetJournal() *journalconfig.JournalOptions

	// GetExtension 获取扩展调用配置
	GetExtension() *extensionconfig.ExtensionOptions

	// GetAppConfig 获取原始应用配置（可能为nil）
	GetAppConfig() *types.AppConfig
}
