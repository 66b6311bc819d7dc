package journal

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/weisyn/assetbridge/internal/core/extension"
	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/types"
)

var (
	ErrJournalExhausted = errors.New("journal exhausted")
	ErrSelectorMismatch = errors.New("selector differs from journal")
	ErrInputMismatch    = errors.New("input differs from journal")
)

// ReplayHost 按记录顺序应答扩展调用
//
// 每次调用必须与下一条记录的选择子和输入完全一致，否则以 HostDiverged 中止。
type ReplayHost struct {
	records []*types.CallRecord
	next    int
}

var _ ext.HostCaller = (*ReplayHost)(nil)

// NewReplayHost 创建回放宿主
func NewReplayHost(records []*types.CallRecord) *ReplayHost {
	return &ReplayHost{records: records}
}

// Call 实现 HostCaller
func (h *ReplayHost) Call(_ context.Context, selector types.Selector, input []byte) (types.StatusCode, []byte) {
	if h.next >= len(h.records) {
		h.diverge(selector, fmt.Errorf("%w after %d calls", ErrJournalExhausted, len(h.records)))
	}

	record := h.records[h.next]
	if record.Selector != selector {
		h.diverge(selector, fmt.Errorf("%w at #%d: recorded %s", ErrSelectorMismatch, h.next, record.Selector))
	}
	if !bytes.Equal(record.Input, input) {
		h.diverge(selector, fmt.Errorf("%w at #%d (%s)", ErrInputMismatch, h.next, record.Operation))
	}

	h.next++
	return record.Status, record.Output
}

// Remaining 尚未回放的记录数
func (h *ReplayHost) Remaining() int {
	return len(h.records) - h.next
}

func (h *ReplayHost) diverge(selector types.Selector, cause error) {
	v := &extension.ProtocolViolation{Kind: extension.HostDiverged, Selector: selector, Cause: cause}
	if op, ok := extension.OperationBySelector(selector); ok {
		v.Operation = op.Name
	}
	extension.Abort(v)
}
