package journal

import (
	"context"
	"sync/atomic"

	ext "github.com/weisyn/assetbridge/pkg/interfaces/extension"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

// Recorder 把事件总线上的调用记录写入 Journal
type Recorder struct {
	journal ext.Journal
	bus     event.EventBus
	logger  log.Logger
	handler func(*types.CallRecord)

	recorded atomic.Uint64
	failed   atomic.Uint64
}

// NewRecorder 创建录制器并订阅 extension:call
func NewRecorder(journal ext.Journal, bus event.EventBus, logger log.Logger) (*Recorder, error) {
	r := &Recorder{journal: journal, bus: bus, logger: logger}
	r.handler = r.onCall
	if err := bus.Subscribe(event.EventTypeExtensionCall, r.handler); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Recorder) onCall(record *types.CallRecord) {
	if err := r.journal.Append(context.Background(), record); err != nil {
		r.failed.Add(1)
		if r.logger != nil {
			r.logger.Errorf("写入调用日志失败: id=%s op=%s err=%v", record.ID, record.Operation, err)
		}
		return
	}
	r.recorded.Add(1)
}

// Recorded 已写入的记录数
func (r *Recorder) Recorded() uint64 {
	return r.recorded.Load()
}

// Failed 写入失败的记录数
func (r *Recorder) Failed() uint64 {
	return r.failed.Load()
}

// Stop 取消订阅
func (r *Recorder) Stop() error {
	return r.bus.Unsubscribe(event.EventTypeExtensionCall, r.handler)
}
