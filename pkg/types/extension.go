package types

import (
	"fmt"
	"time"
)

// Selector 扩展调用选择子（16位）
//
// 选择子是与宿主之间的兼容性契约，一经发布不得重新编号。
type Selector uint16

// String 返回 0x 前缀的四位十六进制
func (s Selector) String() string {
	return fmt.Sprintf("0x%04x", uint16(s))
}

// StatusCode 宿主调用返回的状态码（u32）
//
// 0 表示成功；非零值索引固定的错误目录。
type StatusCode uint32

// StatusSuccess 成功状态码
const StatusSuccess StatusCode = 0

// IsSuccess 是否为成功状态
func (c StatusCode) IsSuccess() bool {
	return c == StatusSuccess
}

// CallRecord 一次扩展调用的完整记录
//
// 由宿主侧分发器在每次调用结束后生成，用于事件发布、调用日志和回放。
type CallRecord struct {
	ID        string        `json:"id"`
	Selector  Selector      `json:"selector"`
	Operation string        `json:"operation"`
	AssetID   AssetID       `json:"asset_id"`
	Status    StatusCode    `json:"status"`
	Input     []byte        `json:"input"`
	Output    []byte        `json:"output,omitempty"`
	Duration  time.Duration `json:"duration"`
	At        time.Time     `json:"at"`
}
