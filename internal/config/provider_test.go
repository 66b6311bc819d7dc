package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/pkg/types"
)

// TestProvider_Defaults 测试未配置时的默认值
func TestProvider_Defaults(t *testing.T) {
	provider := NewProvider(nil)

	logOpts := provider.GetLog()
	assert.Equal(t, "info", logOpts.Level)
	assert.Equal(t, "stderr", logOpts.FilePath)

	journalOpts := provider.GetJournal()
	assert.True(t, journalOpts.Enabled)
	assert.Equal(t, "./data/journal", journalOpts.Dir)
	assert.False(t, journalOpts.InMemory)

	extOpts := provider.GetExtension()
	assert.Equal(t, uint16(0), extOpts.ExtensionID)
	assert.Equal(t, uint32(16*1024), extOpts.MaxInputLen)
	assert.Equal(t, uint32(16*1024), extOpts.MaxOutputLen)
}

// TestProvider_UserOverrides 测试用户配置覆盖
func TestProvider_UserOverrides(t *testing.T) {
	cfg := &types.AppConfig{
		DataDir: types.StringPtr("/tmp/assetbridge"),
		Log: &types.UserLogConfig{
			Level:    types.StringPtr("debug"),
			FilePath: types.StringPtr("/var/log/assetbridge.log"),
		},
		Journal: &types.UserJournalConfig{
			InMemory: types.BoolPtr(true),
		},
		Extension: &types.UserExtensionConfig{
			ExtensionID: types.Uint16Ptr(7),
			MaxInputLen: types.Uint32Ptr(0),
		},
	}
	provider := NewProvider(cfg)

	logOpts := provider.GetLog()
	assert.Equal(t, "debug", logOpts.Level)
	assert.Equal(t, "/var/log/assetbridge.log", logOpts.FilePath)
	assert.False(t, logOpts.ToConsole, "指定文件路径时默认不输出到控制台")

	journalOpts := provider.GetJournal()
	assert.True(t, journalOpts.InMemory)
	assert.Equal(t, filepath.Join("/tmp/assetbridge", "journal"), journalOpts.Dir, "数据目录应跟随 data_dir")

	extOpts := provider.GetExtension()
	assert.Equal(t, uint16(7), extOpts.ExtensionID)
	assert.Equal(t, uint32(16*1024), extOpts.MaxInputLen, "0 不应覆盖默认上限")
}

// TestProvider_ExplicitJournalDir 测试显式 journal.dir 优先于 data_dir
func TestProvider_ExplicitJournalDir(t *testing.T) {
	cfg := &types.AppConfig{
		DataDir: types.StringPtr("/tmp/a"),
		Journal: &types.UserJournalConfig{Dir: types.StringPtr("/tmp/b")},
	}
	assert.Equal(t, "/tmp/b", NewProvider(cfg).GetJournal().Dir)
}

// TestLoadAppConfig 测试从JSON文件加载
func TestLoadAppConfig(t *testing.T) {
	t.Run("空路径返回空配置", func(t *testing.T) {
		cfg, err := LoadAppConfig("")
		require.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Nil(t, cfg.Log)
	})

	t.Run("正常文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"log":{"level":"warn"},"extension":{"extension_id":3}}`), 0600))

		cfg, err := LoadAppConfig(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.Log)
		assert.Equal(t, "warn", *cfg.Log.Level)
		require.NotNil(t, cfg.Extension)
		assert.Equal(t, uint16(3), *cfg.Extension.ExtensionID)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("非法JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0600))
		_, err := LoadAppConfig(path)
		assert.Error(t, err)
	})
}
