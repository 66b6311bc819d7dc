// Package extension 提供扩展调用边界（WASM 绑定）的配置
package extension

import (
	configtypes "github.com/weisyn/assetbridge/pkg/types"
)

const (
	// defaultExtensionID func_id 高16位；资产扩展是运行时唯一的扩展，编号为0
	defaultExtensionID uint16 = 0

	// defaultMaxInputLen 单次调用输入上限
	// 最长的参数元组（transfer_from）为 4+32+32+16 字节，16KiB 足够宽松
	defaultMaxInputLen uint32 = 16 * 1024

	// defaultMaxOutputLen 单次调用输出上限（token_name/token_symbol 为变长字节）
	defaultMaxOutputLen uint32 = 16 * 1024
)

// ExtensionOptions 扩展调用配置选项
type ExtensionOptions struct {
	ExtensionID  uint16 `json:"extension_id"`
	MaxInputLen  uint32 `json:"max_input_len"`
	MaxOutputLen uint32 `json:"max_output_len"`
}

// Config 扩展调用配置实现
type Config struct {
	options *ExtensionOptions
}

// New 创建扩展调用配置
func New(userConfig *configtypes.UserExtensionConfig) *Config {
	options := &ExtensionOptions{
		ExtensionID:  defaultExtensionID,
		MaxInputLen:  defaultMaxInputLen,
		MaxOutputLen: defaultMaxOutputLen,
	}
	if userConfig != nil {
		if userConfig.ExtensionID != nil {
			options.ExtensionID = *userConfig.ExtensionID
		}
		if userConfig.MaxInputLen != nil && *userConfig.MaxInputLen > 0 {
			options.MaxInputLen = *userConfig.MaxInputLen
		}
		if userConfig.MaxOutputLen != nil && *userConfig.MaxOutputLen > 0 {
			options.MaxOutputLen = *userConfig.MaxOutputLen
		}
	}
	return &Config{options: options}
}

// GetOptions 获取完整配置选项
func (c *Config) GetOptions() *ExtensionOptions {
	return c.options
}
