// Package extension 为合约侧提供资产扩展调用原语
//
// SealHost 通过 seal0.seal_call_chain_extension 宿主函数发起调用，
// 实现 HostCaller 接口，可直接交给扩展调用门使用。
package extension

import (
	"context"

	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

// DefaultOutputCapacity 默认输出缓冲区容量
const DefaultOutputCapacity = 16 * 1024

// rawCallFunc 底层宿主调用
//
// output 为调用方提供的缓冲区，返回状态码与实际写入长度。
type rawCallFunc func(funcID uint32, input []byte, output []byte) (status uint32, n uint32)

// SealHost 合约内的扩展调用原语
type SealHost struct {
	extensionID uint16
	capacity    int
	raw         rawCallFunc
}

var _ ext.HostCaller = (*SealHost)(nil)

// NewSealHost 创建合约侧调用原语
func NewSealHost(extensionID uint16) *SealHost {
	return &SealHost{
		extensionID: extensionID,
		capacity:    DefaultOutputCapacity,
		raw:         callChainExtension,
	}
}

// WithOutputCapacity 设置输出缓冲区容量
func (h *SealHost) WithOutputCapacity(capacity int) *SealHost {
	h.capacity = capacity
	return h
}

// FuncID 组合扩展ID（高16位）与选择子（低16位）
func FuncID(extensionID uint16, selector types.Selector) uint32 {
	return uint32(extensionID)<<16 | uint32(selector)
}

// Call 实现 HostCaller
//
// 宿主无法完成调用时 guest 直接陷入，这里不会返回。
func (h *SealHost) Call(_ context.Context, selector types.Selector, input []byte) (types.StatusCode, []byte) {
	output := make([]byte, h.capacity)
	status, n := h.raw(FuncID(h.extensionID, selector), input, output)
	return types.StatusCode(status), output[:n]
}
