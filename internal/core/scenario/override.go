package scenario

import (
	"context"

	"github.com/weisyn/assetbridge/internal/core/extension"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

// RawOverrideHost 对指定选择子直接返回原始状态码，不调用内层宿主
//
// 用于模拟宿主返回任意状态码（包括未公开的状态码）。
type RawOverrideHost struct {
	inner     ext.HostCaller
	overrides map[types.Selector]types.StatusCode
}

var _ ext.HostCaller = (*RawOverrideHost)(nil)

// NewRawOverrideHost 按场景中的 overrides 包装宿主；没有覆盖时原样返回 inner
func NewRawOverrideHost(inner ext.HostCaller, s *Scenario) ext.HostCaller {
	if len(s.Overrides) == 0 {
		return inner
	}
	overrides := make(map[types.Selector]types.StatusCode, len(s.Overrides))
	for name, status := range s.Overrides {
		if op, ok := extension.OperationByName(name); ok {
			overrides[op.Selector] = status
		}
	}
	return &RawOverrideHost{inner: inner, overrides: overrides}
}

// Call 实现 HostCaller
func (h *RawOverrideHost) Call(ctx context.Context, selector types.Selector, input []byte) (types.StatusCode, []byte) {
	if status, ok := h.overrides[selector]; ok {
		return status, nil
	}
	return h.inner.Call(ctx, selector, input)
}
