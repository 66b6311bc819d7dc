// Package journal 提供扩展调用日志（BadgerDB）的配置
package journal

import (
	configtypes "github.com/weisyn/assetbridge/pkg/types"
)

const (
	defaultEnabled    = true
	defaultDir        = "./data/journal"
	defaultInMemory   = false
	defaultSyncWrites = false
)

// JournalOptions 调用日志配置选项
type JournalOptions struct {
	Enabled    bool   `json:"enabled"`     // 是否记录扩展调用
	Dir        string `json:"dir"`         // BadgerDB 数据目录
	InMemory   bool   `json:"in_memory"`   // 内存模式（不落盘）
	SyncWrites bool   `json:"sync_writes"` // 同步写盘
}

// Config 调用日志配置实现
type Config struct {
	options *JournalOptions
}

// New 创建调用日志配置
func New(userConfig *configtypes.UserJournalConfig) *Config {
	options := createDefaultJournalOptions()
	if userConfig != nil {
		if userConfig.Enabled != nil {
			options.Enabled = *userConfig.Enabled
		}
		if userConfig.Dir != nil {
			options.Dir = *userConfig.Dir
		}
		if userConfig.InMemory != nil {
			options.InMemory = *userConfig.InMemory
		}
		if userConfig.SyncWrites != nil {
			options.SyncWrites = *userConfig.SyncWrites
		}
	}
	return &Config{options: options}
}

// NewFromOptions 直接从选项创建配置，nil 时使用默认值
func NewFromOptions(options *JournalOptions) *Config {
	if options == nil {
		options = createDefaultJournalOptions()
	}
	return &Config{options: options}
}

func createDefaultJournalOptions() *JournalOptions {
	return &JournalOptions{
		Enabled:    defaultEnabled,
		Dir:        defaultDir,
		InMemory:   defaultInMemory,
		SyncWrites: defaultSyncWrites,
	}
}

// GetOptions 获取完整配置选项
func (c *Config) GetOptions() *JournalOptions {
	return c.options
}

// IsEnabled 是否记录扩展调用
func (c *Config) IsEnabled() bool { return c.options.Enabled }

// GetDir 获取数据目录
func (c *Config) GetDir() string { return c.options.Dir }

// IsInMemory 是否内存模式
func (c *Config) IsInMemory() bool { return c.options.InMemory }

// IsSyncWritesEnabled 是否同步写盘
func (c *Config) IsSyncWritesEnabled() bool { return c.options.SyncWrites }
