package types

// LogLevel 日志级别类型
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// AppConfig 应用配置（对应JSON配置文件）
//
// 所有字段均为可选指针：只有配置文件中实际出现的字段才会覆盖默认值。
type AppConfig struct {
	AppName *string `json:"app_name,omitempty"` // 应用名称
	DataDir *string `json:"data_dir,omitempty"` // 数据目录

	// 日志配置 - 对应配置文件中的 log 字段
	Log *UserLogConfig `json:"log,omitempty"`

	// 调用日志配置 - 对应配置文件中的 journal 字段
	Journal *UserJournalConfig `json:"journal,omitempty"`

	// 扩展调用配置 - 对应配置文件中的 extension 字段
	Extension *UserExtensionConfig `json:"extension,omitempty"`
}

// UserLogConfig 用户日志配置
type UserLogConfig struct {
	Level     *string `json:"level,omitempty"`      // 日志级别：debug, info, warn, error, fatal
	FilePath  *string `json:"file_path,omitempty"`  // 日志文件路径（stdout/stderr 表示控制台）
	ToConsole *bool   `json:"to_console,omitempty"` // 是否输出到控制台
}

// UserJournalConfig 用户调用日志配置
type UserJournalConfig struct {
	Enabled    *bool   `json:"enabled,omitempty"`     // 是否记录扩展调用
	Dir        *string `json:"dir,omitempty"`         // BadgerDB 数据目录
	InMemory   *bool   `json:"in_memory,omitempty"`   // 是否使用内存模式
	SyncWrites *bool   `json:"sync_writes,omitempty"` // 是否同步写盘
}

// UserExtensionConfig 用户扩展调用配置
type UserExtensionConfig struct {
	ExtensionID  *uint16 `json:"extension_id,omitempty"`   // func_id 高16位
	MaxInputLen  *uint32 `json:"max_input_len,omitempty"`  // 单次调用输入上限（字节）
	MaxOutputLen *uint32 `json:"max_output_len,omitempty"` // 单次调用输出上限（字节）
}

// StringPtr 返回字符串指针（用于构造可选配置）
func StringPtr(s string) *string { return &s }

// BoolPtr 返回布尔指针
func BoolPtr(b bool) *bool { return &b }

// Uint16Ptr 返回uint16指针
func Uint16Ptr(v uint16) *uint16 { return &v }

// Uint32Ptr 返回uint32指针
func Uint32Ptr(v uint32) *uint32 { return &v }
