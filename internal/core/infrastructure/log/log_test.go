package log

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	logconfig "github.com/weisyn/assetbridge/internal/config/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

// TestNew_FileOutput 测试文件输出为JSON格式
func TestNew_FileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "bridge.log")
	cfg := logconfig.New(&types.UserLogConfig{
		Level:    types.StringPtr("debug"),
		FilePath: types.StringPtr(logPath),
	})

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.With("module", "gate", "selector", "0x3d26").Info("扩展调用完成")
	require.NoError(t, logger.Sync())

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan(), "日志文件应至少有一行")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "扩展调用完成", entry["message"])
	assert.Equal(t, "gate", entry["module"])
	assert.Equal(t, "0x3d26", entry["selector"])
}

// TestNew_LevelFilter 测试级别过滤
func TestNew_LevelFilter(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bridge.log")
	cfg := logconfig.New(&types.UserLogConfig{
		Level:    types.StringPtr("warn"),
		FilePath: types.StringPtr(logPath),
	})

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Info("不应写入")
	logger.Warn("应写入")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "不应写入")
	assert.Contains(t, string(data), "应写入")
}

// TestNewModuleLogger 测试 module 字段
func TestNewModuleLogger(t *testing.T) {
	core, recorded := observer.New(zap.DebugLevel)
	base := NewFromZap(zap.New(core))

	NewModuleLogger(base, "hostext").Debugf("分发 %s", "transfer")

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "分发 transfer", entries[0].Message)
	assert.Equal(t, "hostext", entries[0].ContextMap()["module"])

	assert.Nil(t, NewModuleLogger(nil, "x"))
}

// TestGlobalLogger 测试全局日志记录器
func TestGlobalLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(), "未设置时也应返回可用的记录器")

	logger := NewNopLogger()
	SetLogger(logger)
	assert.Same(t, logger, GetLogger())

	SetLogger(nil)
	assert.Same(t, logger, GetLogger(), "nil 不应覆盖已有记录器")
}
