package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/types"
)

// TestEventBus 测试同步订阅、异步订阅与取消订阅
func TestEventBus(t *testing.T) {
	eventBus := New(nil)

	// 同步事件处理
	var received *types.CallRecord
	handler := func(record *types.CallRecord) {
		received = record
	}
	require.NoError(t, eventBus.Subscribe(event.EventTypeExtensionCall, handler))
	assert.True(t, eventBus.HasCallback(event.EventTypeExtensionCall))

	record := &types.CallRecord{ID: "c1", Selector: 0xdb20, Operation: "transfer"}
	eventBus.Publish(event.EventTypeExtensionCall, record)
	assert.Same(t, record, received)

	// 异步事件处理
	var (
		mu    sync.Mutex
		async []string
	)
	asyncHandler := func(record *types.CallRecord) {
		mu.Lock()
		async = append(async, record.ID)
		mu.Unlock()
	}
	require.NoError(t, eventBus.SubscribeAsync(event.EventType("async-event"), asyncHandler, true))
	eventBus.Publish(event.EventType("async-event"), &types.CallRecord{ID: "a1"})
	eventBus.Publish(event.EventType("async-event"), &types.CallRecord{ID: "a2"})
	eventBus.WaitAsync()

	mu.Lock()
	assert.Equal(t, []string{"a1", "a2"}, async, "transactional 订阅应保持顺序")
	mu.Unlock()

	// 取消订阅
	require.NoError(t, eventBus.Unsubscribe(event.EventTypeExtensionCall, handler))
	received = nil
	eventBus.Publish(event.EventTypeExtensionCall, &types.CallRecord{ID: "c2"})
	assert.Nil(t, received)
	assert.False(t, eventBus.HasCallback(event.EventTypeExtensionCall))

	assert.Equal(t, uint64(4), eventBus.PublishedCount())
}
