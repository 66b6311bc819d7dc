package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/pkg/types"
)

const transferScenario = `
name: transfer-rejected
asset_id: 7
caller: contract
accounts:
  contract: "0x00000000000000000000000000000000000000000000000000000000000000c0"
  alice: "0x00000000000000000000000000000000000000000000000000000000000000a1"
  bob: "0x00000000000000000000000000000000000000000000000000000000000000b0"
ledger:
  balances:
    - {owner: alice, value: "500"}
  fail: [transfer]
overrides:
  mint: 42
steps:
  - op: balance_of
    args: [alice]
    expect: {result: "500"}
  - op: transfer
    args: [bob, "1000"]
    expect: {error: TransferFailed}
  - op: mint
    args: [bob, "1"]
    expect: {abort: true}
`

// execute 以给定参数运行根命令，运行前重置全局标志
func execute(t *testing.T, args ...string) error {
	t.Helper()
	globalFlags = GlobalFlags{}
	replayOffset = 0
	guestExport, guestArgs = "call", nil
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))
	return path
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	globalFlags = GlobalFlags{JournalDir: "/tmp/j", InMemory: true}
	defer func() { globalFlags = GlobalFlags{} }()

	appConfig, err := loadAppConfig()
	require.NoError(t, err)
	require.NotNil(t, appConfig.Journal)
	assert.True(t, *appConfig.Journal.Enabled)
	assert.Equal(t, "/tmp/j", *appConfig.Journal.Dir)
	assert.True(t, *appConfig.Journal.InMemory)
}

func TestLoadAppConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"journal":{"enabled":false,"dir":"/data/j"}}`), 0600))

	globalFlags = GlobalFlags{ConfigPath: path}
	defer func() { globalFlags = GlobalFlags{} }()

	appConfig, err := loadAppConfig()
	require.NoError(t, err)
	assert.False(t, *appConfig.Journal.Enabled)
	assert.Equal(t, "/data/j", *appConfig.Journal.Dir)
	assert.Equal(t, (*types.UserLogConfig)(nil), appConfig.Log)
}

func TestStatusAndCatalogue(t *testing.T) {
	for _, code := range []string{"0", "4", "0x2a", "4294967295"} {
		assert.NoError(t, execute(t, "status", code), code)
	}
	assert.Error(t, execute(t, "status", "abc"))
	assert.NoError(t, execute(t, "catalogue"))
}

// TestSimulateThenReplay 录制一次场景运行后按日志回放
func TestSimulateThenReplay(t *testing.T) {
	path := writeScenario(t, transferScenario)
	dir := filepath.Join(t.TempDir(), "journal")

	require.NoError(t, execute(t, "simulate", path, "--journal-dir", dir))
	require.NoError(t, execute(t, "journal", "--journal-dir", dir))
	require.NoError(t, execute(t, "replay", path, "--journal-dir", dir))
}

func TestSimulate_InMemoryExpectationFailure(t *testing.T) {
	path := writeScenario(t, `
asset_id: 1
steps:
  - op: total_supply
    expect: {result: "9"}
`)
	err := execute(t, "simulate", path, "--in-memory")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 个步骤未满足期望")
}

func TestReplay_Diverged(t *testing.T) {
	path := writeScenario(t, transferScenario)
	dir := filepath.Join(t.TempDir(), "journal")

	// 空日志：首个调用即以 HostDiverged 中止，期望 result 的步骤失败
	err := execute(t, "replay", path, "--journal-dir", dir)
	require.Error(t, err)

	assert.Error(t, execute(t, "replay", path, "--journal-dir", dir, "--offset", "5"))
}

// forwardingGuestWasm 导出 call(i32 x5) -> i32，把参数原样转发给 seal0.seal_call_chain_extension
var forwardingGuestWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x01, 0x0a, 0x01, 0x60, 0x05, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x01, 0x7f,
	0x02, 0x23, 0x01,
	0x05, 's', 'e', 'a', 'l', '0',
	0x19, 's', 'e', 'a', 'l', '_', 'c', 'a', 'l', 'l', '_', 'c', 'h', 'a', 'i', 'n', '_',
	'e', 'x', 't', 'e', 'n', 's', 'i', 'o', 'n',
	0x00, 0x00,
	0x03, 0x02, 0x01, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x11, 0x02,
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
	0x04, 'c', 'a', 'l', 'l', 0x00, 0x01,
	0x0a, 0x10, 0x01, 0x0e, 0x00,
	0x20, 0x00, 0x20, 0x01, 0x20, 0x02, 0x20, 0x03, 0x20, 0x04,
	0x10, 0x00, 0x0b,
}

// transferArgs transfer(asset 0, to 0, value 0)：输入是 52 个零字节，输出容量为 0
func transferArgs(extensionID uint32) []string {
	funcID := extensionID<<16 | 0xdb20
	return []string{
		"--arg", fmt.Sprint(funcID), "--arg", "0", "--arg", "52", "--arg", "1024", "--arg", "4096",
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

// TestGuest_ExtensionConfig 合约经 seal0 调用账本，扩展ID取自配置文件
func TestGuest_ExtensionConfig(t *testing.T) {
	scenarioPath := writeScenario(t, transferScenario)
	wasmPath := writeFile(t, "guest.wasm", forwardingGuestWasm)
	configPath := writeFile(t, "config.json", []byte(`{"extension":{"extension_id":3}}`))

	args := append([]string{"guest", scenarioPath, wasmPath, "--in-memory", "--config", configPath}, transferArgs(3)...)
	require.NoError(t, execute(t, args...))

	// 默认扩展ID 0 与配置不符，合约陷入
	args = append([]string{"guest", scenarioPath, wasmPath, "--in-memory", "--config", configPath}, transferArgs(0)...)
	assert.Error(t, execute(t, args...))

	// 不带配置时默认扩展ID为 0
	args = append([]string{"guest", scenarioPath, wasmPath, "--in-memory"}, transferArgs(0)...)
	require.NoError(t, execute(t, args...))
}

func TestGuest_MissingExport(t *testing.T) {
	scenarioPath := writeScenario(t, transferScenario)
	wasmPath := writeFile(t, "guest.wasm", forwardingGuestWasm)

	err := execute(t, "guest", scenarioPath, wasmPath, "--in-memory", "--export", "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run")
}

func TestJournal_Disabled(t *testing.T) {
	configPath := writeFile(t, "config.json", []byte(`{"journal":{"enabled":false}}`))

	err := execute(t, "journal", "--config", configPath)
	assert.ErrorIs(t, err, errJournalDisabled)
}
